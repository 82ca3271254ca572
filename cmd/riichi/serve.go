package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/lox/riichi/internal/server"
)

type ServeCmd struct {
	Addr string `short:"a" help:"Address to listen on (overrides the server block in the rules file)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	ev, err := cfg.NewEvaluator(logger)
	if err != nil {
		return err
	}

	addr := cfg.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	srv := server.NewServer(addr, ev, logger)
	ctx, cancel := signalContext(logger)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		_ = srv.Shutdown(context.Background())
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return <-errCh
}
