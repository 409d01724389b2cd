package challenge

import (
	"fmt"
	"slices"
)

// Registry is an immutable set of challenges keyed by ID.
type Registry struct {
	byID map[ID]Challenge
	all  []Challenge // sorted by ID
}

// NewRegistry indexes challenges. It rejects invalid or duplicate IDs and
// challenges with a missing part.
func NewRegistry(challenges ...Challenge) (*Registry, error) {
	r := &Registry{byID: make(map[ID]Challenge, len(challenges))}
	for _, c := range challenges {
		if !c.ID.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrBadID, c.ID)
		}
		if c.Part1 == nil || c.Part2 == nil {
			return nil, fmt.Errorf("challenge: %v: both parts must be set", c.ID)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %v", ErrDuplicate, c.ID)
		}
		r.byID[c.ID] = c
		r.all = append(r.all, c)
	}
	slices.SortFunc(r.all, func(a, b Challenge) int { return a.ID.Compare(b.ID) })

	return r, nil
}

// Get returns the challenge registered under id, or ErrNotFound.
func (r *Registry) Get(id ID) (Challenge, error) {
	c, ok := r.byID[id]
	if !ok {
		return Challenge{}, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	return c, nil
}

// Lookup parses s and returns the matching challenge.
func (r *Registry) Lookup(s string) (Challenge, error) {
	id, err := ParseID(s)
	if err != nil {
		return Challenge{}, err
	}
	return r.Get(id)
}

// All returns every challenge ordered by ID.
func (r *Registry) All() []Challenge {
	return slices.Clone(r.all)
}

// Len returns the number of registered challenges.
func (r *Registry) Len() int { return len(r.all) }
