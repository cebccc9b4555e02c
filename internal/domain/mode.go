package domain

// NumberingMode selects which lines receive a line number prefix.
type NumberingMode int

const (
	// NumberNone leaves every line unnumbered.
	NumberNone NumberingMode = iota
	// NumberAll numbers every line.
	NumberAll
	// NumberNonBlank numbers only lines that are not blank.
	NumberNonBlank
)

// String returns the flag-style name of the mode.
func (m NumberingMode) String() string {
	switch m {
	case NumberAll:
		return "all"
	case NumberNonBlank:
		return "nonblank"
	default:
		return "none"
	}
}

// RenderMode selects how line content bytes are rendered.
type RenderMode int

const (
	// RenderPlain copies content bytes unchanged.
	RenderPlain RenderMode = iota
	// RenderTabs replaces each horizontal tab with ^I.
	RenderTabs
	// RenderUnprintable applies caret and meta notation to control and
	// high-bit bytes. Tabs stay literal in this mode.
	RenderUnprintable
)

// String returns the flag-style name of the mode.
func (m RenderMode) String() string {
	switch m {
	case RenderTabs:
		return "tabs"
	case RenderUnprintable:
		return "unprintable"
	default:
		return "plain"
	}
}
