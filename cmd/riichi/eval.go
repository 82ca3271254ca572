package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/riichi/mahjong"
)

type EvalCmd struct {
	Hands     []string `arg:"" help:"Hands in tile notation, e.g. 123m456p789s11122z (0 is a red five)"`
	Seat      string   `short:"s" default:"east" help:"Seat wind of the player (east, south, west, north)"`
	Closed    bool     `help:"The hand has no called melds"`
	Riichi    bool     `short:"r" help:"The player has declared riichi (implies --closed)"`
	RoundWind string   `name:"round-wind" short:"w" help:"Prevailing wind of the round"`
}

// evalRow is one evaluated hand, or the error that stopped it.
type evalRow struct {
	Hand   string
	Result mahjong.Result
	Err    error
}

func (c *EvalCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	ev, err := cfg.NewEvaluator(logger)
	if err != nil {
		return err
	}

	player, table, err := c.context()
	if err != nil {
		return err
	}

	rows := make([]evalRow, 0, len(c.Hands))
	for _, s := range c.Hands {
		row := evalRow{Hand: s}
		hand, err := mahjong.ParseHand(s)
		if err == nil {
			row.Result, err = ev.Evaluate(hand, player, table)
			row.Hand = hand.String()
		}
		row.Err = err
		rows = append(rows, row)
	}

	return renderEval(os.Stdout, rows)
}

func (c *EvalCmd) context() (*mahjong.PlayerInfo, *mahjong.TableInfo, error) {
	seat, err := mahjong.ParseSeat(c.Seat)
	if err != nil {
		return nil, nil, err
	}
	player := &mahjong.PlayerInfo{
		Seat:         seat,
		IsHandClosed: c.Closed || c.Riichi,
		CalledRiichi: c.Riichi,
	}

	if c.RoundWind == "" {
		return player, nil, nil
	}
	wind, err := mahjong.ParseSeat(c.RoundWind)
	if err != nil {
		return nil, nil, fmt.Errorf("round wind: %w", err)
	}
	return player, &mahjong.TableInfo{RoundWind: wind}, nil
}

func renderEval(out io.Writer, rows []evalRow) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Hand"),
		headerStyle.Render("Result"),
		headerStyle.Render("Shape"),
		headerStyle.Render("Yaku"),
		headerStyle.Render("Han"))

	failed := 0
	for _, row := range rows {
		hand := handStyle.Render(row.Hand)
		switch {
		case row.Err != nil:
			failed++
			fmt.Fprintf(w, "%s\t%s\t\t%s\t\n", hand, loseStyle.Render("error"), row.Err)
		case !row.Result.Winning:
			fmt.Fprintf(w, "%s\t%s\t-\t-\t-\n", hand, loseStyle.Render("incomplete"))
		default:
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				hand,
				winStyle.Render("complete"),
				row.Result.Shape,
				yakuStyle.Render(yakuList(row.Result.Yaku)),
				hanStyle.Render(fmt.Sprint(row.Result.Han())))
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d hands could not be evaluated", failed, len(rows))
	}
	return nil
}

func yakuList(matches []mahjong.Match) string {
	if len(matches) == 0 {
		return "none"
	}
	parts := make([]string, len(matches))
	for i, m := range matches {
		parts[i] = fmt.Sprintf("%s (%d)", m.Name, m.Han)
	}
	return strings.Join(parts, ", ")
}
