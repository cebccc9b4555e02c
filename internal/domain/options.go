package domain

// Options is the validated set of display flags for one run.
type Options struct {
	NumberNonBlank       bool
	ShowLineEnd          bool
	NumberAllLines       bool
	IgnoreAdjacentBlanks bool
	DisplayTabSymbol     bool
	ShowUnprintables     bool
}

// Numbering derives the numbering mode. NumberNonBlank takes priority
// over NumberAllLines.
func (o Options) Numbering() NumberingMode {
	switch {
	case o.NumberNonBlank:
		return NumberNonBlank
	case o.NumberAllLines:
		return NumberAll
	default:
		return NumberNone
	}
}

// Rendering derives the content rendering mode. ShowUnprintables takes
// priority over DisplayTabSymbol, so tabs pass through literally when both
// are set.
func (o Options) Rendering() RenderMode {
	switch {
	case o.ShowUnprintables:
		return RenderUnprintable
	case o.DisplayTabSymbol:
		return RenderTabs
	default:
		return RenderPlain
	}
}

