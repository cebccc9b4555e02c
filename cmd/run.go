package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/eykd/kitty-go/internal/ctxlog"
	"github.com/eykd/kitty-go/internal/linesource"
	"github.com/eykd/kitty-go/internal/lock"
	"github.com/eykd/kitty-go/internal/pipeline"
	"github.com/eykd/kitty-go/internal/render"
)

// stdinName is how standard input is named in messages.
const stdinName = "-"

// runKitty streams one input through the display pipeline to the command's
// output.
func runKitty(cmd *cobra.Command, path string, f *rootFlags) error {
	logger := ctxlog.New(cmd.ErrOrStderr(), f.verbose)
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	opts := f.options()
	logger.Debug("options resolved",
		"numbering", opts.Numbering(),
		"rendering", opts.Rendering(),
		"show_ends", opts.ShowLineEnd,
		"squeeze_blank", opts.IgnoreAdjacentBlanks)

	in, name, err := openInput(ctx, cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	defer in.Close()

	if f.lock {
		release, err := acquireLock(ctx, name)
		if err != nil {
			return err
		}
		defer release()
	}

	tr := pipeline.NewTransformer(opts, render.For(opts.Rendering()))
	stats, err := pipeline.Run(ctx, linesource.New(in), cmd.OutOrStdout(), tr)
	logger.Debug("run finished",
		"input", name,
		"read", stats.Read,
		"emitted", stats.Emitted,
		"dropped", stats.Dropped,
		"numbered", stats.Numbered)
	if err != nil {
		return &ContextError{Path: name, Err: err}
	}
	return nil
}

// openInput opens the named file, or returns stdin when path is empty or "-".
func openInput(ctx context.Context, stdin io.Reader, path string) (io.ReadCloser, string, error) {
	logger := ctxlog.FromContext(ctx)

	if path == "" || path == stdinName {
		logger.Debug("reading standard input")
		return io.NopCloser(stdin), stdinName, nil
	}

	file, err := os.Open(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return nil, path, &ContextError{Op: "open", Path: path, Err: err}
	}
	logger.Debug("input opened", "path", path)
	return file, path, nil
}

// acquireLock takes a shared advisory lock on the named input and returns
// the function that releases it. Standard input is never locked.
func acquireLock(ctx context.Context, name string) (func(), error) {
	logger := ctxlog.FromContext(ctx)

	if name == stdinName {
		logger.Debug("lock skipped for standard input")
		return func() {}, nil
	}

	l := lock.NewFromPath(name)
	if err := l.TryRLock(ctx); err != nil {
		if errors.Is(err, lock.ErrLocked) {
			return nil, &LockHeldError{Path: name}
		}
		return nil, &ContextError{Op: "lock", Path: name, Err: err}
	}
	logger.Debug("shared lock acquired", "path", l.Path())

	return func() {
		if err := l.Unlock(); err != nil {
			logger.Warn("releasing lock", "path", name, "error", err)
			return
		}
		logger.Debug("shared lock released", "path", name)
	}, nil
}
