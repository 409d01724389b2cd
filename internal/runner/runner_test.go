package runner_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/internal/runner"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func echo(c challenge.ID) challenge.Challenge {
	return challenge.Challenge{
		ID:    c,
		Part1: func(in string) (string, error) { return strings.ToUpper(in), nil },
		Part2: func(in string) (string, error) { return fmt.Sprint(len(in)), nil },
	}
}

func TestSolve(t *testing.T) {
	r := runner.New(quiet, 0)
	res, err := r.Solve(context.Background(), echo(challenge.ID{Year: 2024, Day: 1}), "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", res.Part1)
	assert.Equal(t, "3", res.Part2)
}

func TestSolve_PartError(t *testing.T) {
	boom := errors.New("boom")
	c := echo(challenge.ID{Year: 2024, Day: 2})
	c.Part2 = func(string) (string, error) { return "", boom }

	res, err := runner.New(quiet, 0).Solve(context.Background(), c, "x")
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "2024-02 part 2")
	assert.Equal(t, "X", res.Part1, "part 1 result is kept")
}

func TestSolve_RecoversPanic(t *testing.T) {
	c := echo(challenge.ID{Year: 2024, Day: 3})
	c.Part1 = func(string) (string, error) { panic("index out of range") }

	_, err := runner.New(quiet, 0).Solve(context.Background(), c, "x")
	require.ErrorIs(t, err, runner.ErrPanic)
	assert.Contains(t, err.Error(), "index out of range")
}

func TestSolve_Timeout(t *testing.T) {
	c := echo(challenge.ID{Year: 2024, Day: 4})
	release := make(chan struct{})
	defer close(release)
	c.Part1 = func(string) (string, error) {
		<-release
		return "", nil
	}

	_, err := runner.New(quiet, 20*time.Millisecond).Solve(context.Background(), c, "x")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSolveAll(t *testing.T) {
	ids := []challenge.ID{{Year: 2015, Day: 1}, {Year: 2015, Day: 2}, {Year: 2015, Day: 3}}
	cs := make([]challenge.Challenge, len(ids))
	for i, id := range ids {
		cs[i] = echo(id)
	}
	failing := errors.New("unreadable")
	load := func(id challenge.ID) (string, error) {
		switch id.Day {
		case 2:
			return "", fmt.Errorf("%w: %v", input.ErrMissing, id)
		case 3:
			return "", failing
		}
		return "in", nil
	}

	results, err := runner.New(quiet, 0).SolveAll(context.Background(), cs, load, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "IN", results[0].Part1)
	assert.NoError(t, results[0].Err)
	assert.True(t, results[1].Skipped)
	assert.ErrorIs(t, results[2].Err, failing)
	for i, res := range results {
		assert.Equal(t, ids[i], res.ID)
	}
}

func TestSolveAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cs := []challenge.Challenge{echo(challenge.ID{Year: 2015, Day: 1})}
	_, err := runner.New(quiet, 0).SolveAll(ctx, cs, func(challenge.ID) (string, error) { return "", nil }, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnswers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")

	a, err := runner.LoadAnswers(path)
	require.NoError(t, err)
	require.Empty(t, a)

	res := runner.Result{ID: challenge.ID{Year: 2024, Day: 6}, Part1: "41", Part2: "6"}
	require.ErrorIs(t, a.Check(res), runner.ErrNoAnswer)

	a.Record(res)
	require.NoError(t, a.Save(path))

	loaded, err := runner.LoadAnswers(path)
	require.NoError(t, err)
	require.NoError(t, loaded.Check(res))

	wrong := res
	wrong.Part2 = "7"
	err = loaded.Check(wrong)
	require.ErrorIs(t, err, runner.ErrWrongAnswer)
	assert.Contains(t, err.Error(), "part 2")
}

func TestAnswers_PartialRecord(t *testing.T) {
	a := runner.Answers{"2024-06": {Part1: "41"}}
	res := runner.Result{ID: challenge.ID{Year: 2024, Day: 6}, Part1: "41", Part2: "anything"}
	assert.NoError(t, a.Check(res))
}

func TestAnswers_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o644))
	_, err := runner.LoadAnswers(path)
	require.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "06.txt")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- runner.New(quiet, 0).Watch(ctx, path, func() { calls.Add(1) })
	}()

	// Keep writing until the watcher has picked up a change; the watcher may
	// not be registered yet when the first write lands.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("v2"), 0o644)
		return calls.Load() > 0
	}, 5*time.Second, 150*time.Millisecond)

	// Writes to sibling files are ignored. Let any pending debounce settle first.
	time.Sleep(300 * time.Millisecond)
	before := calls.Load()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "07.txt"), []byte("x"), 0o644))
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, before, calls.Load())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}
