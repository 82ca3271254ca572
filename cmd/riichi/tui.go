package main

import (
	"os"

	"github.com/lox/riichi/internal/tui"
)

type TUICmd struct{}

func (c *TUICmd) Run(g *Globals) error {
	// the alternate screen owns stdout, so logs go to a file when debugging
	logOut := os.Stderr
	if g.Debug {
		f, err := os.OpenFile("riichi-tui.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}

	cfg, logger, err := g.setup(logOut)
	if err != nil {
		return err
	}
	ev, err := cfg.NewEvaluator(logger)
	if err != nil {
		return err
	}
	return tui.Run(ev, logger)
}
