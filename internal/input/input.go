// Package input locates, reads and normalises puzzle input text.
package input

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/aoc/challenge"
)

// ErrMissing indicates the expected input file does not exist.
var ErrMissing = errors.New("input: file not found")

// Normalize converts CRLF to LF and drops trailing newlines. Leading and
// inner whitespace is kept because some puzzles depend on it.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.TrimRight(s, "\n")
}

// Lines splits normalised input into lines; empty input yields nil.
func Lines(s string) []string {
	s = Normalize(s)
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits normalised input on blank lines.
func Blocks(s string) [][]string {
	var out [][]string
	for _, b := range strings.Split(Normalize(s), "\n\n") {
		if lines := Lines(b); lines != nil {
			out = append(out, lines)
		}
	}
	return out
}

// Path returns the conventional location of id's input under dir:
// <dir>/<year>/<day>.txt with a two-digit day.
func Path(dir string, id challenge.ID) string {
	return filepath.Join(dir, fmt.Sprintf("%d", id.Year), fmt.Sprintf("%02d.txt", id.Day))
}

// ReadFile reads and normalises the file at path. A missing file is
// reported as ErrMissing.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissing, path)
	}
	if err != nil {
		return "", fmt.Errorf("input: read %s: %w", path, err)
	}
	return Normalize(string(data)), nil
}

// Read reads r to EOF and normalises the text.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("input: read: %w", err)
	}
	return Normalize(string(data)), nil
}

// Source describes where the input for one challenge may come from.
type Source struct {
	// File is an explicit path; it wins over everything else.
	File string
	// Stdin is read when File is empty and Piped is set.
	Stdin io.Reader
	Piped bool
	// Dir is the input directory searched last, via Path.
	Dir string
	ID  challenge.ID
}

// Resolve reads the input described by src. The returned origin is the file
// path that was read, or "-" for stdin.
func Resolve(src Source) (text, origin string, err error) {
	switch {
	case src.File != "":
		text, err = ReadFile(src.File)
		return text, src.File, err
	case src.Piped && src.Stdin != nil:
		text, err = Read(src.Stdin)
		return text, "-", err
	default:
		path := Path(src.Dir, src.ID)
		text, err = ReadFile(path)
		return text, path, err
	}
}
