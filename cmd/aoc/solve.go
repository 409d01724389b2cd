package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/internal/runner"
	"github.com/katalvlaran/aoc/internal/ui"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <id> [input-file]",
		Short: "Solve a challenge",
		Long: `Solve runs both parts of a challenge and prints the answers.

Input is read from input-file when given, else from stdin when it is piped,
else from <input_dir>/<year>/<day>.txt. With --all every registered
challenge that has an input file is solved concurrently.`,
		Example: `  aoc solve 2024-06
  aoc solve 2024/6 input.txt --check
  cat input.txt | aoc solve 2015-03
  aoc solve --all --workers 8`,
		Args: cobra.MaximumNArgs(2),
		RunE: a.runSolve,
	}

	f := cmd.Flags()
	f.BoolVar(&a.all, "all", false, "solve every challenge with an input file")
	f.BoolVar(&a.check, "check", false, "compare answers with the answers file and fail on mismatch")
	f.BoolVar(&a.record, "record", false, "store the answers in the answers file")
	f.BoolVarP(&a.watch, "watch", "w", false, "solve again whenever the input file changes")
	f.BoolVarP(&a.timings, "timings", "t", false, "print how long each part took")
	f.IntVar(&a.workers, "workers", 0, "challenges solved at once with --all")
	cmd.MarkFlagsMutuallyExclusive("all", "watch")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	if a.all {
		if len(args) > 0 {
			return errors.New("solve: --all takes no arguments")
		}
		return a.solveAll(cmd)
	}
	if len(args) == 0 {
		return errors.New("solve: missing challenge id")
	}

	c, err := a.reg.Lookup(args[0])
	if err != nil {
		return err
	}
	src := input.Source{
		Stdin: cmd.InOrStdin(),
		Piped: a.piped != nil && a.piped(),
		Dir:   a.cfg.InputDir,
		ID:    c.ID,
	}
	if len(args) == 2 {
		src.File = args[1]
	}
	in, origin, err := input.Resolve(src)
	if err != nil {
		return err
	}
	if a.watch && origin == "-" {
		return errors.New("solve: --watch needs an input file, not stdin")
	}

	ctx := cmd.Context()
	r := runner.New(a.log, a.cfg.Timeout)
	p := a.printer(cmd)
	a.log.Info("solving", "id", c.ID.String(), "input", origin)

	err = a.solveOne(ctx, r, p, c, in)
	if !a.watch {
		return err
	}
	if err != nil {
		p.Error(err)
	}
	return r.Watch(ctx, origin, func() {
		in, err := input.ReadFile(origin)
		if err == nil {
			err = a.solveOne(ctx, r, p, c, in)
		}
		if err != nil {
			p.Error(err)
		}
	})
}

func (a *app) solveOne(ctx context.Context, r *runner.Runner, p *ui.Printer, c challenge.Challenge, in string) error {
	res, err := r.Solve(ctx, c, in)
	if err != nil {
		return err
	}
	p.Result(res, a.timings)
	return a.verify([]runner.Result{res}, true)
}

func (a *app) solveAll(cmd *cobra.Command) error {
	r := runner.New(a.log, a.cfg.Timeout)
	load := func(id challenge.ID) (string, error) {
		return input.ReadFile(input.Path(a.cfg.InputDir, id))
	}
	results, err := r.SolveAll(cmd.Context(), a.reg.All(), load, a.cfg.Workers)
	if err != nil {
		return err
	}
	a.printer(cmd).Summary(results)

	failed := 0
	solved := results[:0:0]
	for _, res := range results {
		switch {
		case res.Err != nil:
			failed++
		case !res.Skipped:
			solved = append(solved, res)
		}
	}
	if err := a.verify(solved, false); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("solve: %d of %d challenges failed", failed, len(results))
	}
	return nil
}

// verify applies --record and --check to results. Unless strict, results
// without a recorded answer pass the check.
func (a *app) verify(results []runner.Result, strict bool) error {
	if !a.check && !a.record {
		return nil
	}
	answers, err := runner.LoadAnswers(a.cfg.AnswersFile)
	if err != nil {
		return err
	}

	if a.record {
		for _, res := range results {
			answers.Record(res)
		}
		if err := answers.Save(a.cfg.AnswersFile); err != nil {
			return err
		}
		a.log.Info("answers recorded", "path", a.cfg.AnswersFile, "count", len(results))
	}
	if !a.check {
		return nil
	}

	var errs []error
	for _, res := range results {
		err := answers.Check(res)
		if errors.Is(err, runner.ErrNoAnswer) && !strict {
			continue
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
