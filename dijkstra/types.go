package dijkstra

import "errors"

// Sentinel errors returned by ShortestPaths.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Weight is the set of edge value types ShortestPaths accepts.
type Weight interface {
	~int | ~int64
}

// Options configures ShortestPaths.
//
// MaxDistance – if set (≥ 0), vertices whose distance would exceed it are skipped.
// ReturnPath  – if true, predecessors are kept for Result.Path.
type Options struct {
	MaxDistance    int64
	HasMaxDistance bool
	ReturnPath     bool
}

// Option represents a functional option for configuring ShortestPaths.
type Option func(*Options)

// WithMaxDistance caps the explored distance. A negative value makes
// ShortestPaths return ErrBadMaxDistance.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		o.MaxDistance = d
		o.HasMaxDistance = true
	}
}

// WithReturnPath keeps predecessor links for path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// Result holds the outcome of one ShortestPaths run.
type Result[K comparable, W Weight] struct {
	Source K
	dist   map[K]W
	prev   map[K]K // nil unless ReturnPath
}

// Distance returns the shortest distance from Source to k and whether k was reached.
func (r *Result[K, W]) Distance(k K) (W, bool) {
	d, ok := r.dist[k]
	return d, ok
}

// Reached returns the number of vertices reached, including Source.
func (r *Result[K, W]) Reached() int {
	return len(r.dist)
}

// Distances returns a copy of the distance map over reached vertices.
func (r *Result[K, W]) Distances() map[K]W {
	out := make(map[K]W, len(r.dist))
	for k, d := range r.dist {
		out[k] = d
	}
	return out
}

// Path returns the vertices from Source to target inclusive, or nil if
// target was not reached or predecessors were not kept.
func (r *Result[K, W]) Path(target K) []K {
	if _, ok := r.dist[target]; !ok {
		return nil
	}
	if target != r.Source && r.prev == nil {
		return nil
	}
	path := []K{target}
	for at := target; at != r.Source; {
		at = r.prev[at]
		path = append(path, at)
	}
	// reverse into source→target order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
