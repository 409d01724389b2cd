package point

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadFormat indicates the text passed to FromString is not "x,y".
var ErrBadFormat = errors.New("point: expected \"x,y\"")

// Rotation selects a 90° rotation direction.
type Rotation int

const (
	// CW rotates (x,y) → (y,−x).
	CW Rotation = iota
	// CCW rotates (x,y) → (−y,x).
	CCW
)

// Point is an integer 2D coordinate or vector.
type Point struct {
	X, Y int
}

// Screen-space unit vectors.
var (
	Up    = Point{0, -1}
	Down  = Point{0, 1}
	Left  = Point{-1, 0}
	Right = Point{1, 0}
)

// Cardinals lists the four orthogonal directions clockwise from Up.
var Cardinals = []Point{Up, Right, Down, Left}

// Compass lists all eight directions clockwise from Up: N, NE, E, SE, S, SW, W, NW.
var Compass = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// New returns the point (x, y).
func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// FromTuple builds a point from an [x, y] pair.
func FromTuple(t [2]int) Point {
	return Point{X: t[0], Y: t[1]}
}

// FromString parses "x,y". Spaces around either component are ignored.
func FromString(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("%w: %q", ErrBadFormat, s)
	}

	return Point{X: x, Y: y}, nil
}

// ToArray returns the point as an [x, y] pair.
func (p Point) ToArray() [2]int {
	return [2]int{p.X, p.Y}
}

// String formats the point as "x,y", the inverse of FromString.
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Translate moves p by v scaled by magnitude. No bounds are checked.
func (p *Point) Translate(v Point, magnitude int) {
	p.X += v.X * magnitude
	p.Y += v.Y * magnitude
}

// Rotate turns p by 90° in direction dir around origin.
func (p *Point) Rotate(dir Rotation, origin Point) {
	x, y := p.X-origin.X, p.Y-origin.Y
	switch dir {
	case CW:
		x, y = y, -x
	case CCW:
		x, y = -y, x
	}
	p.X, p.Y = x+origin.X, y+origin.Y
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p−q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p·k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Neg returns −p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// ManhattanDistance returns |Δx| + |Δy|.
func (p Point) ManhattanDistance(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// IsAdjacentTo reports whether |Δx| == 1 or |Δy| == 1.
//
// This is the literal per-axis OR: (1,100) counts as adjacent.
// Use IsAdjacentToCardinal, or compare the Chebyshev distance yourself, when
// true 8-neighbour adjacency is needed.
func (p Point) IsAdjacentTo(q Point) bool {
	return abs(p.X-q.X) == 1 || abs(p.Y-q.Y) == 1
}

// IsAdjacentToCardinal reports whether q is one of p's four orthogonal neighbours.
func (p Point) IsAdjacentToCardinal(q Point) bool {
	return p.ManhattanDistance(q) == 1
}

// Equal reports whether p and q have the same coordinates.
func (p Point) Equal(q Point) bool {
	return p == q
}

// Clone returns a copy of p.
func (p Point) Clone() Point {
	return p
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
