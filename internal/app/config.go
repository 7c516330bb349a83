package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"lifelog/internal/core"
	"lifelog/internal/engine"
	"lifelog/internal/pattern"
	"lifelog/internal/record"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size      core.Bounds
	Record    bool
	RedisURL  string
	Namespace string

	Pattern string
	Origin  core.Coord
	Seed    int64
	Density float64

	Delay         time.Duration
	StepsPerFrame int
	Frames        int

	Policy  string
	Retries int
	Backoff time.Duration

	LogLevel string
	GUI      bool
	Scale    int
	Replay   string
}

// NewConfig returns a Config populated with sensible defaults. The log level
// defaults to $LIFELOG_LOG when set.
func NewConfig() *Config {
	level := os.Getenv("LIFELOG_LOG")
	if level == "" {
		level = "info"
	}
	return &Config{
		Size:          core.Bounds{Width: 128, Height: 128},
		RedisURL:      "redis://localhost:6379",
		Namespace:     record.DefaultNamespace,
		Pattern:       "glider",
		Seed:          42,
		Density:       0.25,
		Delay:         200 * time.Millisecond,
		StepsPerFrame: 4,
		Policy:        engine.PolicyAbort.String(),
		Retries:       3,
		Backoff:       100 * time.Millisecond,
		LogLevel:      level,
		Scale:         4,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Var(pairFlag{parse: func(s string) error {
		b, err := core.ParseBounds(s)
		if err == nil {
			c.Size = b
		}
		return err
	}, value: func() string { return c.Size.String() }}, "size", "grid dimensions as width:height")
	fs.BoolVar(&c.Record, "record", c.Record, "record every generation to redis")
	fs.BoolVar(&c.Record, "r", c.Record, "shorthand for -record")
	fs.StringVar(&c.RedisURL, "redis-url", c.RedisURL, "redis server used by -record")
	fs.StringVar(&c.Namespace, "namespace", c.Namespace, "key prefix for recorded generations")

	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern, or \"random\"")
	fs.Var(pairFlag{parse: func(s string) error {
		o, err := core.ParseCoord(s)
		if err == nil {
			c.Origin = o
		}
		return err
	}, value: func() string { return fmt.Sprintf("%d:%d", c.Origin.Row, c.Origin.Col) }}, "origin", "pattern origin as row:col")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random pattern")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for the random pattern")

	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between displayed frames")
	fs.IntVar(&c.StepsPerFrame, "steps-per-frame", c.StepsPerFrame, "generations simulated between frames")
	fs.IntVar(&c.Frames, "frames", c.Frames, "frames to display before exiting (0 runs until interrupted)")

	fs.StringVar(&c.Policy, "policy", c.Policy, "on recording failure: abort, skip or retry")
	fs.IntVar(&c.Retries, "retries", c.Retries, "attempts per generation with -policy retry")
	fs.DurationVar(&c.Backoff, "backoff", c.Backoff, "base wait between retries")

	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&c.GUI, "gui", c.GUI, "open a window instead of printing to the terminal")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for -gui")
	fs.StringVar(&c.Replay, "replay", c.Replay, "print a recorded generation given as grid-id:generation and exit")
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if !c.Size.Valid() {
		return fmt.Errorf("size %s: dimensions must be positive", c.Size)
	}
	if c.Pattern != "random" {
		if _, ok := pattern.Lookup(c.Pattern); !ok {
			return fmt.Errorf("unknown pattern %q (have %v and random)", c.Pattern, pattern.Names())
		}
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density %v outside [0,1]", c.Density)
	}
	if c.StepsPerFrame < 1 {
		return errors.New("steps-per-frame must be at least 1")
	}
	if c.Frames < 0 {
		return errors.New("frames must not be negative")
	}
	if _, err := engine.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if c.Retries < 1 {
		return errors.New("retries must be at least 1")
	}
	if c.Scale < 1 {
		return errors.New("scale must be at least 1")
	}
	return nil
}

type pairFlag struct {
	parse func(string) error
	value func() string
}

func (p pairFlag) String() string {
	if p.value == nil {
		return ""
	}
	return p.value()
}

func (p pairFlag) Set(s string) error { return p.parse(s) }
