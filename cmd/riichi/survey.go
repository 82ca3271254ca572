package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/riichi/internal/survey"
	"github.com/lox/riichi/mahjong"
)

type SurveyCmd struct {
	Hands     int           `short:"n" default:"100000" help:"Number of hands to deal"`
	Seed      *int64        `help:"Random seed for reproducible results"`
	Workers   int           `short:"j" help:"Worker goroutines (default: number of CPUs)"`
	Mode      string        `default:"wall" enum:"wall,complete" help:"wall deals from a shuffled set, complete builds four melds and a pair"`
	RedFives  bool          `name:"red-fives" default:"true" negatable:"" help:"Include one red five per suit in the wall"`
	Seat      string        `default:"east" help:"Seat wind of the player"`
	Closed    bool          `default:"true" negatable:"" help:"Treat hands as closed"`
	RoundWind string        `name:"round-wind" default:"east" help:"Prevailing wind of the round"`
	Limit     time.Duration `help:"Stop after this long and report what was dealt"`
	Progress  time.Duration `default:"5s" help:"Log progress at this interval (0 disables)"`
	Out       string        `short:"o" type:"path" help:"Write the JSON report to this file"`
}

func (c *SurveyCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup(os.Stderr)
	if err != nil {
		return err
	}
	ev, err := cfg.NewEvaluator(logger)
	if err != nil {
		return err
	}

	seat, err := mahjong.ParseSeat(c.Seat)
	if err != nil {
		return err
	}
	wind, err := mahjong.ParseSeat(c.RoundWind)
	if err != nil {
		return fmt.Errorf("round wind: %w", err)
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}
	logger.Info("Using seed", "seed", seed)

	ctx, cancel := signalContext(logger)
	defer cancel()

	runner := survey.NewRunner(ev, quartz.NewReal(), logger)
	report, err := runner.Run(ctx, survey.Config{
		Hands:            c.Hands,
		Workers:          c.Workers,
		Seed:             seed,
		Mode:             survey.Mode(c.Mode),
		RedFives:         c.RedFives,
		Player:           &mahjong.PlayerInfo{Seat: seat, IsHandClosed: c.Closed},
		Table:            &mahjong.TableInfo{RoundWind: wind},
		TimeLimit:        c.Limit,
		ProgressInterval: c.Progress,
	})
	if err != nil {
		return err
	}

	if err := renderSurvey(os.Stdout, report); err != nil {
		return err
	}
	if c.Out != "" {
		if err := report.Write(c.Out); err != nil {
			return err
		}
		logger.Info("Wrote report", "path", c.Out)
	}
	return nil
}

func renderSurvey(out io.Writer, r *survey.Report) error {
	fmt.Fprintf(out, "%s %d hands (%s mode, seed %d, %d workers)",
		headerStyle.Render("Surveyed"), r.Hands, r.Mode, r.Seed, r.Workers)
	if r.Truncated {
		fmt.Fprintf(out, " %s", loseStyle.Render(fmt.Sprintf("stopped early, %d requested", r.Requested)))
	}
	fmt.Fprintln(out)
	lo, hi := r.WinRateInterval95()
	fmt.Fprintf(out, "Complete: %s of %d (%.3f%%, 95%% CI %.3f-%.3f%%) in %s, %.0f hands/s\n",
		winStyle.Render(fmt.Sprint(r.Winning)), r.Hands, r.WinRate()*100, lo*100, hi*100,
		r.Elapsed.Round(time.Millisecond), r.HandsPerSecond())
	if r.Han.Count() > 0 {
		hanLo, hanHi := r.Han.ConfidenceInterval95()
		fmt.Fprintf(out, "Han: mean %s (95%% CI %.2f-%.2f), sd %.2f, median %d, p90 %d\n",
			hanStyle.Render(fmt.Sprintf("%.2f", r.Han.Mean())), hanLo, hanHi,
			r.Han.StdDev(), r.Han.Median(), r.Han.Percentile(0.9))
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("Shape"), headerStyle.Render("Hands"))
	for _, s := range []mahjong.Shape{mahjong.ShapeStandard, mahjong.ShapeSevenPairs, mahjong.ShapeThirteenOrphans, mahjong.ShapeNone} {
		fmt.Fprintf(w, "%s\t%d\n", s, r.Shapes[s.String()])
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s\t%s\t%s\n", headerStyle.Render("Yaku"), headerStyle.Render("Hands"), headerStyle.Render("Of complete"))
	for _, row := range r.YakuByFrequency() {
		share := 0.0
		if r.Winning > 0 {
			share = float64(row.Count) / float64(r.Winning) * 100
		}
		fmt.Fprintf(w, "%s\t%d\t%.2f%%\n", yakuStyle.Render(row.Name), row.Count, share)
	}
	return w.Flush()
}
