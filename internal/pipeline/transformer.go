// Package pipeline turns raw input lines into displayed output lines.
package pipeline

import (
	"strconv"

	"github.com/eykd/kitty-go/internal/domain"
)

// Renderer appends the display form of line content to dst.
type Renderer interface {
	Render(dst, content []byte) ([]byte, error)
}

// State is the per-run memory carried from one line to the next. The zero
// value is the state before the first line.
type State struct {
	// LineNumber is the last number assigned to a line.
	LineNumber uint64
	// PreviousBlank reports whether the previous raw line was blank,
	// including a previous line that was dropped.
	PreviousBlank bool
}

// Outcome is the result of transforming one raw line.
type Outcome struct {
	// Out holds the bytes to emit. It is nil when Dropped is set.
	Out []byte
	// Dropped is set when the line was squeezed out as an adjacent blank.
	Dropped bool
	// Numbered is set when the line consumed a line number.
	Numbered bool
}

// Transformer applies a fixed set of display options to raw lines.
type Transformer struct {
	numbering domain.NumberingMode
	squeeze   bool
	showEnds  bool
	renderer  Renderer
}

// NewTransformer derives the per-run modes from opts once. The renderer
// must match opts.Rendering().
func NewTransformer(opts domain.Options, r Renderer) *Transformer {
	return &Transformer{
		numbering: opts.Numbering(),
		squeeze:   opts.IgnoreAdjacentBlanks,
		showEnds:  opts.ShowLineEnd,
		renderer:  r,
	}
}

// Step transforms raw, the next line from the input, given the state left
// by the previous line. It returns the state for the following line.
//
// PreviousBlank in the returned state always reflects raw, even when raw
// itself is dropped, so a run of any length collapses to one blank line.
func (t *Transformer) Step(st State, raw []byte) (State, Outcome, error) {
	blank := domain.IsBlank(raw)
	if t.squeeze && blank && st.PreviousBlank {
		return st, Outcome{Dropped: true}, nil
	}
	st.PreviousBlank = blank

	content, term := splitTerminator(raw)

	var out []byte
	var numbered bool
	if t.numbering == domain.NumberAll || (t.numbering == domain.NumberNonBlank && !blank) {
		st.LineNumber++
		numbered = true
		out = make([]byte, 0, len(raw)+24)
		out = append(out, '\t')
		out = strconv.AppendUint(out, st.LineNumber, 10)
		out = append(out, ' ')
	} else {
		out = make([]byte, 0, len(raw)+2)
	}

	out, err := t.renderer.Render(out, content)
	if err != nil {
		return st, Outcome{}, err
	}
	if t.showEnds {
		out = append(out, '$')
	}
	out = append(out, term...)

	return st, Outcome{Out: out, Numbered: numbered}, nil
}

// splitTerminator separates a trailing '\n' from the rest of raw.
func splitTerminator(raw []byte) (content, term []byte) {
	if n := len(raw); n > 0 && raw[n-1] == '\n' {
		return raw[:n-1], raw[n-1:]
	}
	return raw, nil
}
