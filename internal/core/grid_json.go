package core

import (
	"encoding/json"
	"fmt"
)

type gridJSON struct {
	ID     string   `json:"id"`
	Bounds [2]int   `json:"bounds"`
	Cells  [][]bool `json:"cells"`
}

// MarshalJSON encodes the grid as {"id", "bounds": [w, h], "cells": [[...]]}
// with one inner array per row.
func (g *Grid) MarshalJSON() ([]byte, error) {
	rows := make([][]bool, g.bounds.Width)
	for r := range rows {
		start := r * g.bounds.Height
		rows[r] = g.data[start : start+g.bounds.Height]
	}
	return json.Marshal(gridJSON{
		ID:     g.id,
		Bounds: [2]int{g.bounds.Width, g.bounds.Height},
		Cells:  rows,
	})
}

// UnmarshalJSON decodes the MarshalJSON layout, rejecting cell matrices that
// do not match the declared bounds.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var raw gridJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	bounds := Bounds{Width: raw.Bounds[0], Height: raw.Bounds[1]}
	if !bounds.Valid() {
		return fmt.Errorf("grid %q: invalid bounds %s", raw.ID, bounds)
	}
	if len(raw.Cells) != bounds.Width {
		return fmt.Errorf("grid %q: got %d rows, bounds say %d", raw.ID, len(raw.Cells), bounds.Width)
	}
	for r, row := range raw.Cells {
		if len(row) != bounds.Height {
			return fmt.Errorf("grid %q: row %d has %d cells, bounds say %d", raw.ID, r, len(row), bounds.Height)
		}
	}
	// Every row matched, so the area is backed by decoded data.
	cells := make([]bool, 0, len(raw.Cells)*bounds.Height)
	for _, row := range raw.Cells {
		cells = append(cells, row...)
	}
	g.id = raw.ID
	g.bounds = bounds
	g.data = cells
	return nil
}
