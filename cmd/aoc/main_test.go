package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/internal/input"
	"github.com/katalvlaran/aoc/internal/runner"
	"github.com/katalvlaran/aoc/solutions"
)

const routes = `London to Dublin = 464
London to Belfast = 518
Dublin to Belfast = 141
`

// workspace is a temporary directory with its own aoc.yaml.
type workspace struct {
	dir     string
	config  string
	answers string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	dir := t.TempDir()
	ws := &workspace{
		dir:     dir,
		config:  filepath.Join(dir, "aoc.yaml"),
		answers: filepath.Join(dir, "answers.yaml"),
	}
	yaml := fmt.Sprintf("input_dir: %q\nanswers_file: %q\nlog_level: error\ncolor: false\nworkers: 2\ntimeout: 10s\n",
		filepath.Join(dir, "inputs"), ws.answers)
	require.NoError(t, os.WriteFile(ws.config, []byte(yaml), 0o644))
	return ws
}

func (ws *workspace) input(t *testing.T, id string, text string) string {
	t.Helper()
	cid, err := challenge.ParseID(id)
	require.NoError(t, err)
	path := input.Path(filepath.Join(ws.dir, "inputs"), cid)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

// run executes the CLI with args; a non-empty stdin is treated as piped.
func (ws *workspace) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	reg, err := solutions.Registry()
	require.NoError(t, err)

	root := newRootCmd(&app{reg: reg, piped: func() bool { return stdin != "" }})
	var out, logs bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append(args, "--config", ws.config))

	err = root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList(t *testing.T) {
	ws := newWorkspace(t)
	out, err := ws.run(t, "", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "2015-03  Perfectly Spherical Houses in a Vacuum", lines[0])
	assert.Equal(t, "2024-12  Garden Groups", lines[8])
}

func TestInfo(t *testing.T) {
	ws := newWorkspace(t)
	out, err := ws.run(t, "", "info", "2024/12")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "2024-12: Garden Groups\n\n"), out)

	_, err = ws.run(t, "", "info", "2019-01")
	require.ErrorIs(t, err, challenge.ErrNotFound)

	_, err = ws.run(t, "", "info", "tomorrow")
	require.ErrorIs(t, err, challenge.ErrBadID)
}

func TestSolve_InputSources(t *testing.T) {
	ws := newWorkspace(t)
	ws.input(t, "2015-03", "^>v<\n")
	file := filepath.Join(ws.dir, "other.txt")
	require.NoError(t, os.WriteFile(file, []byte("^v^v^v^v^v\n"), 0o644))

	out, err := ws.run(t, "", "solve", "2015-03", file)
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 2\nPart 2: 11\n", out)

	out, err = ws.run(t, "^v\n", "solve", "2015-03")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 2\nPart 2: 3\n", out)

	out, err = ws.run(t, "", "solve", "2015-3")
	require.NoError(t, err)
	assert.Equal(t, "Part 1: 4\nPart 2: 3\n", out)
}

func TestSolve_Errors(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.run(t, "", "solve", "2015-09")
	require.ErrorIs(t, err, input.ErrMissing)

	_, err = ws.run(t, "", "solve")
	require.Error(t, err)

	_, err = ws.run(t, "", "solve", "--all", "2015-03")
	require.Error(t, err)

	_, err = ws.run(t, ">>\n", "solve", "2015-03", "--watch")
	require.ErrorContains(t, err, "--watch needs an input file")

	_, err = ws.run(t, "not a move", "solve", "2015-03")
	require.Error(t, err)
}

func TestSolve_RecordAndCheck(t *testing.T) {
	ws := newWorkspace(t)
	ws.input(t, "2015-09", routes)

	_, err := ws.run(t, "", "solve", "2015-09", "--check")
	require.ErrorIs(t, err, runner.ErrNoAnswer)

	_, err = ws.run(t, "", "solve", "2015-09", "--record")
	require.NoError(t, err)
	answers, err := runner.LoadAnswers(ws.answers)
	require.NoError(t, err)
	assert.Equal(t, runner.Answer{Part1: "605", Part2: "982"}, answers["2015-09"])

	_, err = ws.run(t, "", "solve", "2015-09", "--check")
	require.NoError(t, err)

	answers["2015-09"] = runner.Answer{Part1: "605", Part2: "1000"}
	require.NoError(t, answers.Save(ws.answers))
	out, err := ws.run(t, "", "solve", "2015-09", "--check")
	require.ErrorIs(t, err, runner.ErrWrongAnswer)
	assert.Equal(t, "Part 1: 605\nPart 2: 982\n", out, "answers are printed before the check")
}

func TestSolve_All(t *testing.T) {
	ws := newWorkspace(t)
	ws.input(t, "2015-03", "^>v<")
	ws.input(t, "2015-09", routes)

	out, err := ws.run(t, "", "solve", "--all", "--workers", "3", "--check")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "2015-03 4 3", lines[0])
	assert.Equal(t, "2015-09 605 982", lines[1])
	assert.Equal(t, "2024-12 skipped (no input)", lines[8])
}

func TestSolve_AllReportsFailures(t *testing.T) {
	ws := newWorkspace(t)
	ws.input(t, "2015-03", "^?")

	out, err := ws.run(t, "", "solve", "--all")
	require.ErrorContains(t, err, "1 of 9 challenges failed")
	assert.Contains(t, out, "2015-03 error: ")
}

func TestConfigOverrides(t *testing.T) {
	ws := newWorkspace(t)

	_, err := ws.run(t, "", "list", "--log-level", "loud")
	require.ErrorContains(t, err, "config")

	out, err := ws.run(t, "", "list", "--log-level", "DEBUG")
	require.NoError(t, err, "log level is case-insensitive")
	assert.Contains(t, out, "2024-06")

	other := filepath.Join(ws.dir, "elsewhere")
	ws.input(t, "2015-03", ">")
	_, err = ws.run(t, "", "solve", "2015-03", "--input-dir", other)
	require.ErrorIs(t, err, input.ErrMissing)

	reg, err := solutions.Registry()
	require.NoError(t, err)
	root := newRootCmd(&app{reg: reg})
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"list", "--config", filepath.Join(ws.dir, "missing.yaml")})
	require.Error(t, root.Execute(), "an explicit config file must exist")
}
