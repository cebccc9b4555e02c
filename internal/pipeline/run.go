package pipeline

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// LineReader yields raw lines and reports io.EOF at end of input.
type LineReader interface {
	Next() ([]byte, error)
}

// Stats counts what happened to the lines of one run.
type Stats struct {
	Read     int
	Emitted  int
	Dropped  int
	Numbered int
}

// Run reads every line from src, transforms it with t, and writes each
// surviving line to w with a single Write before the next line is read.
// Lines written before a failure stay written. Cancellation of ctx is
// observed between lines.
func Run(ctx context.Context, src LineReader, w io.Writer, t *Transformer) (Stats, error) {
	var (
		st    State
		stats Stats
	)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		raw, err := src.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.Read++

		next, outcome, err := t.Step(st, raw)
		if err != nil {
			return stats, errors.Wrapf(err, "rendering line %d", stats.Read)
		}
		st = next

		if outcome.Dropped {
			stats.Dropped++
			continue
		}
		if outcome.Numbered {
			stats.Numbered++
		}
		if _, err := w.Write(outcome.Out); err != nil {
			return stats, errors.Wrap(err, "writing line")
		}
		stats.Emitted++
	}
}
