// Package record defines the sink that consumes generation snapshots and its
// implementations.
package record

import (
	"context"
	"strconv"
	"strings"

	"lifelog/internal/core"
)

// DefaultNamespace prefixes every key written by the Redis recorder.
const DefaultNamespace = "gameoflife"

// Recorder consumes the grid produced by each generation. Implementations
// must not mutate or retain the snapshot; the engine reuses it once Record
// returns.
type Recorder interface {
	Record(ctx context.Context, generation uint64, snapshot *core.Grid) error
}

// Nop discards every snapshot.
type Nop struct{}

// Record does nothing and never fails.
func (Nop) Record(context.Context, uint64, *core.Grid) error { return nil }

// Func adapts an ordinary function to the Recorder interface.
type Func func(ctx context.Context, generation uint64, snapshot *core.Grid) error

// Record calls f.
func (f Func) Record(ctx context.Context, generation uint64, snapshot *core.Grid) error {
	return f(ctx, generation, snapshot)
}

// Key builds "<namespace>:iteration:<grid-id>:<generation>".
func Key(namespace, gridID string, generation uint64) string {
	var b strings.Builder
	b.WriteString(namespace)
	b.WriteString(":iteration:")
	b.WriteString(gridID)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(generation, 10))
	return b.String()
}
