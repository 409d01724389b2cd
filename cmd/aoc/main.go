// Command aoc solves Advent of Code puzzles.
//
// Usage:
//
//	aoc list
//	aoc info 2024-06
//	aoc solve 2024-06 [input-file]
//	aoc solve 2024-06 --watch
//	aoc solve --all --check
//
// Input is read from the file argument, else from stdin when it is piped,
// else from <input_dir>/<year>/<day>.txt. Settings come from aoc.yaml (see
// internal/config) and can be overridden with flags.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/aoc/internal/ui"
	"github.com/katalvlaran/aoc/solutions"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "aoc:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	reg, err := solutions.Registry()
	if err != nil {
		return err
	}
	root := newRootCmd(&app{
		reg:   reg,
		piped: func() bool { return stdinPiped(os.Stdin) },
	})
	return root.ExecuteContext(ctx)
}

// stdinPiped reports whether f carries redirected data rather than a
// terminal or an inherited empty descriptor.
func stdinPiped(f *os.File) bool {
	if ui.IsTerminal(f) {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	m := fi.Mode()
	return m&os.ModeNamedPipe != 0 || m.IsRegular()
}
