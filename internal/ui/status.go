package ui

import "fmt"

// Status is the per-frame information shown on the HUD.
type Status struct {
	Generation uint64
	Population int
	Paused     bool
}

// Lines formats s for display, one entry per line.
func (s Status) Lines() []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("gen %d", s.Generation),
		fmt.Sprintf("alive %d", s.Population),
		state,
	}
}
