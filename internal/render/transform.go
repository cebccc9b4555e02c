package render

import (
	"golang.org/x/text/transform"

	"github.com/eykd/kitty-go/internal/domain"
)

// Caret is a transform.Transformer that rewrites every source byte with
// Escape.
type Caret struct{ transform.NopResetter }

// Transform implements transform.Transformer.
func (Caret) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		esc := table[src[nSrc]]
		if nDst+len(esc) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], esc)
		nSrc++
	}
	return nDst, nSrc, nil
}

// Tabs is a transform.Transformer that replaces each horizontal tab with
// the two bytes ^I and copies everything else.
type Tabs struct{ transform.NopResetter }

// Transform implements transform.Transformer.
func (Tabs) Transform(dst, src []byte, _ bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		b := src[nSrc]
		if b != '\t' {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = b
			nDst++
			nSrc++
			continue
		}
		if nDst+2 > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = '^'
		dst[nDst+1] = 'I'
		nDst += 2
		nSrc++
	}
	return nDst, nSrc, nil
}

// Renderer appends rendered line content to a buffer.
type Renderer struct {
	mode domain.RenderMode
	t    transform.Transformer
}

// For returns the Renderer for mode.
func For(mode domain.RenderMode) *Renderer {
	switch mode {
	case domain.RenderTabs:
		return &Renderer{mode: mode, t: Tabs{}}
	case domain.RenderUnprintable:
		return &Renderer{mode: mode, t: Caret{}}
	default:
		return &Renderer{mode: domain.RenderPlain}
	}
}

// Mode returns the render mode r was built for.
func (r *Renderer) Mode() domain.RenderMode {
	return r.mode
}

// Render appends the display form of content to dst. Content must not
// include the line terminator.
func (r *Renderer) Render(dst, content []byte) ([]byte, error) {
	if r.t == nil {
		return append(dst, content...), nil
	}
	out, _, err := transform.Append(r.t, dst, content)
	return out, err
}
