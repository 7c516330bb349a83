package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every BoundsError via errors.Is.
var ErrOutOfBounds = errors.New("coordinate out of bounds")

// BoundsError reports an access outside a grid's extent.
type BoundsError struct {
	Coord  Coord
	Bounds Bounds
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinate %s outside bounds %s", e.Coord, e.Bounds)
}

func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// mooreOffsets lists the eight neighbors of a cell.
var mooreOffsets = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid stores a bounded 2D field of boolean cells in row-major order.
// Its id and bounds never change after construction.
type Grid struct {
	id     string
	bounds Bounds
	data   []bool
}

// NewGrid allocates an all-dead grid. Non-positive dimensions are clamped to 1.
func NewGrid(id string, bounds Bounds) *Grid {
	if bounds.Width <= 0 {
		bounds.Width = 1
	}
	if bounds.Height <= 0 {
		bounds.Height = 1
	}
	return &Grid{id: id, bounds: bounds, data: make([]bool, bounds.Area())}
}

// ID returns the identifier assigned at creation.
func (g *Grid) ID() string { return g.id }

// Bounds returns the fixed grid dimensions.
func (g *Grid) Bounds() Bounds { return g.bounds }

// Cells exposes the backing slice in row-major order. Callers must treat it
// as read-only.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for c. c must be in bounds.
func (g *Grid) Index(c Coord) int { return c.Row*g.bounds.Height + c.Col }

func (g *Grid) check(c Coord) error {
	if !g.bounds.Contains(c) {
		return &BoundsError{Coord: c, Bounds: g.bounds}
	}
	return nil
}

// Get returns the state of the cell at c.
func (g *Grid) Get(c Coord) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	return g.data[g.Index(c)], nil
}

// Set writes alive at c and returns the previous state. Nothing is written
// when c is out of bounds.
func (g *Grid) Set(c Coord, alive bool) (bool, error) {
	if err := g.check(c); err != nil {
		return false, err
	}
	idx := g.Index(c)
	prev := g.data[idx]
	g.data[idx] = alive
	return prev, nil
}

// SetRange writes alive to every cell of rows × cols, row by row. The first
// out-of-bounds coordinate aborts the call; cells written before it keep
// their new value.
func (g *Grid) SetRange(rows, cols Span, alive bool) error {
	for r := rows.Start; r < rows.End; r++ {
		for c := cols.Start; c < cols.End; c++ {
			if _, err := g.Set(Coord{Row: r, Col: c}, alive); err != nil {
				return err
			}
		}
	}
	return nil
}

// NeighborCount returns the number of live cells in the Moore neighborhood
// of c. Neighbors outside the grid are skipped. An origin outside the grid is
// clipped the same way: only its in-bounds neighbors are counted.
func (g *Grid) NeighborCount(c Coord) int {
	count := 0
	for _, d := range mooreOffsets {
		n := c.Add(d)
		if !g.bounds.Contains(n) {
			continue
		}
		if g.data[g.Index(n)] {
			count++
		}
	}
	return count
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	data := make([]bool, len(g.data))
	copy(data, g.data)
	return &Grid{id: g.id, bounds: g.bounds, data: data}
}

// Equal reports whether other has the same bounds and cell states. Ids are
// not compared.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.bounds != other.bounds {
		return false
	}
	for i, alive := range g.data {
		if other.data[i] != alive {
			return false
		}
	}
	return true
}
