package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/riichi/internal/config"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Config  string `short:"c" default:"riichi.hcl" help:"Path to HCL rules file (defaults apply when missing)"`
	Debug   bool   `help:"Enable debug logging (overrides config)"`
	NoColor bool   `name:"no-color" help:"Disable coloured output"`
}

// setup loads the rules file and builds the logger every command uses.
func (g *Globals) setup(stderr io.Writer) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.Debug {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	logger := log.NewWithOptions(stderr, log.Options{Level: level})
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		logger.SetColorProfile(termenv.Ascii)
	}
	return cfg, logger, nil
}

// signalContext is cancelled on interrupt or SIGTERM.
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
