package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"lifelog/internal/app"
	"lifelog/internal/record"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("lifelog stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *app.Config, log *slog.Logger) error {
	var rec record.Recorder = record.Nop{}
	if cfg.Record || cfg.Replay != "" {
		sink, err := record.DialRedis(ctx, cfg.RedisURL, cfg.Namespace, log)
		if err != nil {
			return err
		}
		defer sink.Close()
		if cfg.Replay != "" {
			return app.Replay(ctx, sink, cfg.Replay, os.Stdout)
		}
		rec = sink
		log.Info("recording generations", "redis", cfg.RedisURL, "namespace", sink.Namespace())
	}

	eng, err := app.NewEngine(cfg, rec, log)
	if err != nil {
		return err
	}
	if cfg.GUI {
		return app.RunWindow(ctx, eng, cfg)
	}
	return app.RunTerminal(ctx, eng, os.Stdout, cfg)
}
