package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Answer is the pair of accepted answers for one challenge.
type Answer struct {
	Part1 string `yaml:"part1,omitempty"`
	Part2 string `yaml:"part2,omitempty"`
}

// Answers maps challenge IDs ("YYYY-DD") to accepted answers.
type Answers map[string]Answer

// LoadAnswers reads an answers file; a missing file yields an empty set.
func LoadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Answers{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("runner: read answers: %w", err)
	}
	a := Answers{}
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("runner: parse answers %s: %w", path, err)
	}
	return a, nil
}

// Save writes the answers to path.
func (a Answers) Save(path string) error {
	data, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("runner: encode answers: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("runner: write answers: %w", err)
	}
	return nil
}

// Record stores res as the accepted answer for its challenge.
func (a Answers) Record(res Result) {
	a[res.ID.String()] = Answer{Part1: res.Part1, Part2: res.Part2}
}

// Check compares res with the recorded answer. A part with no recorded
// answer is not checked; ErrNoAnswer is returned when neither part is known.
func (a Answers) Check(res Result) error {
	want, ok := a[res.ID.String()]
	if !ok || (want.Part1 == "" && want.Part2 == "") {
		return fmt.Errorf("%w: %v", ErrNoAnswer, res.ID)
	}
	if want.Part1 != "" && want.Part1 != res.Part1 {
		return fmt.Errorf("%w: %v part 1: got %q, want %q", ErrWrongAnswer, res.ID, res.Part1, want.Part1)
	}
	if want.Part2 != "" && want.Part2 != res.Part2 {
		return fmt.Errorf("%w: %v part 2: got %q, want %q", ErrWrongAnswer, res.ID, res.Part2, want.Part2)
	}
	return nil
}
