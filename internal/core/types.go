package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Bounds describes the fixed dimensions of a grid. Width bounds the row
// coordinate and Height bounds the column coordinate.
type Bounds struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive.
func (b Bounds) Valid() bool { return b.Width > 0 && b.Height > 0 }

// Contains reports whether c addresses a cell inside the bounds.
func (b Bounds) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Width && c.Col >= 0 && c.Col < b.Height
}

// Area returns the number of cells covered by the bounds.
func (b Bounds) Area() int { return b.Width * b.Height }

func (b Bounds) String() string { return fmt.Sprintf("%d:%d", b.Width, b.Height) }

// Coord addresses a single cell.
type Coord struct {
	Row int
	Col int
}

// Add offsets c by d.
func (c Coord) Add(d Coord) Coord { return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col} }

func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Span is a half-open integer range [Start, End).
type Span struct {
	Start int
	End   int
}

// ParseBounds parses a "width:height" pair.
func ParseBounds(s string) (Bounds, error) {
	a, b, err := parsePair(s)
	if err != nil {
		return Bounds{}, fmt.Errorf("parse bounds %q: %w", s, err)
	}
	bounds := Bounds{Width: a, Height: b}
	if !bounds.Valid() {
		return Bounds{}, fmt.Errorf("parse bounds %q: dimensions must be positive", s)
	}
	return bounds, nil
}

// ParseCoord parses a "row:col" pair.
func ParseCoord(s string) (Coord, error) {
	a, b, err := parsePair(s)
	if err != nil {
		return Coord{}, fmt.Errorf("parse coord %q: %w", s, err)
	}
	return Coord{Row: a, Col: b}, nil
}

func parsePair(s string) (int, int, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected two values separated by ':'")
	}
	a, err := strconv.Atoi(left)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.Atoi(right)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
