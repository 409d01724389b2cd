package challenge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for challenge lookup and parsing.
var (
	// ErrBadID indicates an ID that is not "YYYY-DD" with a valid year and day.
	ErrBadID = errors.New("challenge: malformed id")
	// ErrDuplicate indicates two challenges registered under the same ID.
	ErrDuplicate = errors.New("challenge: duplicate id")
	// ErrNotFound indicates no challenge is registered under an ID.
	ErrNotFound = errors.New("challenge: not found")
	// ErrNoInput indicates a solution received empty input.
	ErrNoInput = errors.New("challenge: empty input")
)

// Valid ranges for IDs.
const (
	FirstYear = 2015
	LastYear  = 2099
	LastDay   = 25
)

// ID identifies one puzzle.
type ID struct {
	Year, Day int
}

// ParseID parses "YYYY-DD" or "YYYY/DD"; the day may omit its leading zero.
func ParseID(s string) (ID, error) {
	ys, ds, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		ys, ds, ok = strings.Cut(strings.TrimSpace(s), "/")
	}
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrBadID, s)
	}
	year, err := strconv.Atoi(ys)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrBadID, s)
	}
	day, err := strconv.Atoi(ds)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrBadID, s)
	}
	id := ID{Year: year, Day: day}
	if !id.Valid() {
		return ID{}, fmt.Errorf("%w: %q", ErrBadID, s)
	}

	return id, nil
}

// Valid reports whether the year and day fall in the supported ranges.
func (id ID) Valid() bool {
	return id.Year >= FirstYear && id.Year <= LastYear && id.Day >= 1 && id.Day <= LastDay
}

// String formats the ID as "YYYY-DD".
func (id ID) String() string {
	return fmt.Sprintf("%04d-%02d", id.Year, id.Day)
}

// Compare orders IDs by year, then day.
func (id ID) Compare(other ID) int {
	if id.Year != other.Year {
		return id.Year - other.Year
	}
	return id.Day - other.Day
}

// Func solves one part of a puzzle.
type Func func(input string) (string, error)

// Challenge is one puzzle day.
type Challenge struct {
	ID          ID
	Title       string
	Description string
	Part1       Func
	Part2       Func
}
