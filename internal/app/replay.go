package app

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lifelog/internal/core"
	"lifelog/internal/engine"
)

// Fetcher loads a recorded generation.
type Fetcher interface {
	Fetch(ctx context.Context, gridID string, generation uint64) (*core.Grid, error)
}

// ParseReplay splits "grid-id:generation".
func ParseReplay(s string) (string, uint64, error) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 {
		return "", 0, fmt.Errorf("replay %q: expected grid-id:generation", s)
	}
	gen, err := strconv.ParseUint(s[i+1:], 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("replay %q: %w", s, err)
	}
	return s[:i], gen, nil
}

// Replay prints the recorded generation named by target to w.
func Replay(ctx context.Context, f Fetcher, target string, w io.Writer) error {
	id, gen, err := ParseReplay(target)
	if err != nil {
		return err
	}
	g, err := f.Fetch(ctx, id, gen)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "grid %s generation %d (%s, %d alive)\n%s",
		g.ID(), gen, g.Bounds(), g.Population(), engine.RenderGrid(g))
	return err
}
