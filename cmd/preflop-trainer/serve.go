package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lox/preflop-trainer/internal/server"
)

// ServeCmd runs the HTTP and websocket server
type ServeCmd struct {
	TrainingFlags `embed:""`

	Addr      string `short:"a" help:"Server address to bind to (overrides config)"`
	CacheSize int    `help:"Unanswered scenarios to remember (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.CacheSize != 0 {
		cfg.Server.CacheSize = c.CacheSize
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	tc, err := c.apply(cfg)
	if err != nil {
		return err
	}

	logger := stderrLogger(cfg)
	gen := newGenerator(logger, cfg)
	s, err := server.New(logger, gen, server.Options{
		Address:   cfg.Server.Address,
		CacheSize: cfg.Server.CacheSize,
		Training:  tc,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.ListenAndServe(ctx)
}
