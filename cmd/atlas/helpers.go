package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/abelbrown/atlas/internal/client"
	"github.com/abelbrown/atlas/internal/config"
	"github.com/abelbrown/atlas/internal/logging"
	"golang.org/x/time/rate"
)

// loadConfig resolves configuration or exits.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fatalf("failed to load config: %v", err)
	}
	return cfg
}

// setup loads config, points logging at stderr and builds a client.
func setup() (*config.Config, *client.Client) {
	cfg := loadConfig()
	logging.Init(os.Stderr, cfg.Log.Level)
	return cfg, newClient(cfg)
}

// newClient builds a client honoring the configured rate limit.
func newClient(cfg *config.Config) *client.Client {
	var opts []client.Option
	if cfg.RateLimit > 0 {
		opts = append(opts, client.WithRateLimit(rate.Limit(cfg.RateLimit), cfg.Burst))
	}
	return client.New(cfg.BaseURL, opts...)
}

// signalContext is cancelled on interrupt.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// printJSON writes v to stdout, indented when pretty is set.
func printJSON(v any, pretty bool) {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		fatalf("failed to encode output: %v", err)
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
