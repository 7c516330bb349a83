// Package pattern writes well-known Life patterns into a grid.
package pattern

import (
	"sort"

	"lifelog/internal/core"
)

// Pattern is a set of live cells relative to an origin.
type Pattern struct {
	Name  string
	Cells []core.Coord
}

// Glider travels one cell down and right every four generations.
var Glider = Pattern{
	Name:  "glider",
	Cells: []core.Coord{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}, {Row: 1, Col: 2}, {Row: 0, Col: 1}},
}

var (
	blinker = Pattern{
		Name:  "blinker",
		Cells: []core.Coord{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	}
	block = Pattern{
		Name:  "block",
		Cells: []core.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
	}
	beacon = Pattern{
		Name: "beacon",
		Cells: []core.Coord{
			{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0},
			{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 3, Col: 3},
		},
	}
	rPentomino = Pattern{
		Name:  "r-pentomino",
		Cells: []core.Coord{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	}
)

// Seed sets every cell of p, offset by origin, alive. The first coordinate
// outside g aborts with its BoundsError; cells already written stay alive.
func (p Pattern) Seed(origin core.Coord, g *core.Grid) error {
	for _, c := range p.Cells {
		if _, err := g.Set(origin.Add(c), true); err != nil {
			return err
		}
	}
	return nil
}

// SeedGlider writes a glider with its bounding box at origin.
func SeedGlider(origin core.Coord, g *core.Grid) error {
	return Glider.Seed(origin, g)
}

// Random fills g with a deterministic soup where each cell is alive with
// probability density.
func Random(g *core.Grid, seed int64, density float64) {
	core.FillRandom(core.NewRNG(seed), g, density)
}

var patterns = map[string]Pattern{}

// Register adds a pattern under its name.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists registered patterns in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	for _, p := range []Pattern{Glider, blinker, block, beacon, rPentomino} {
		Register(p)
	}
}
