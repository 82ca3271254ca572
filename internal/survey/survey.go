// Package survey deals random hands and tallies how the evaluator scores
// them.
package survey

import (
	"context"
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/riichi/internal/randutil"
	"github.com/lox/riichi/mahjong"
)

// Mode selects how hands are produced.
type Mode string

const (
	// ModeWall deals 14 tiles from a shuffled 136-tile wall.
	ModeWall Mode = "wall"
	// ModeComplete builds hands from four random melds and a pair.
	ModeComplete Mode = "complete"
)

// ParseMode accepts "wall" or "complete".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeWall, ModeComplete:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown survey mode %q", s)
}

// Config describes one survey run.
type Config struct {
	Hands    int
	Workers  int
	Seed     int64
	Mode     Mode
	RedFives bool

	// Player and Table are passed to every evaluation.
	Player *mahjong.PlayerInfo
	Table  *mahjong.TableInfo

	// TimeLimit stops dealing once elapsed; zero means no limit.
	TimeLimit time.Duration
	// ProgressInterval enables periodic progress logging when positive.
	ProgressInterval time.Duration
}

// Runner executes surveys with a shared evaluator.
type Runner struct {
	evaluator *mahjong.Evaluator
	clock     quartz.Clock
	logger    *log.Logger
}

// NewRunner creates a runner. A nil clock uses the real one and a nil logger
// discards output.
func NewRunner(evaluator *mahjong.Evaluator, clock quartz.Clock, logger *log.Logger) *Runner {
	if evaluator == nil {
		evaluator = mahjong.NewEvaluator()
	}
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		evaluator: evaluator,
		clock:     clock,
		logger:    logger.WithPrefix("survey"),
	}
}

// Run evaluates cfg.Hands hands and returns the merged tally. Hands are split
// evenly across workers, each with its own random stream, so results depend
// only on the seed and worker count. Cancelling ctx or hitting the time limit
// returns the partial tally with Truncated set.
func (r *Runner) Run(ctx context.Context, cfg Config) (*Report, error) {
	if cfg.Hands <= 0 {
		return nil, fmt.Errorf("hands must be positive, got %d", cfg.Hands)
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeWall
	}
	if _, err := ParseMode(string(cfg.Mode)); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, cfg.Hands)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var timedOut atomic.Bool
	if cfg.TimeLimit > 0 {
		timer := r.clock.AfterFunc(cfg.TimeLimit, func() {
			timedOut.Store(true)
			cancel()
		}, "survey", "limit")
		defer timer.Stop()
	}

	var done atomic.Int64
	if cfg.ProgressInterval > 0 {
		ticker := r.clock.NewTicker(cfg.ProgressInterval, "survey", "progress")
		defer ticker.Stop()
		go func() {
			for {
				select {
				case <-ticker.C:
					r.logger.Info("Progress", "hands", done.Load(), "of", cfg.Hands)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	report := newReport(cfg, workers)
	report.Started = r.clock.Now()
	r.logger.Debug("Starting survey", "hands", cfg.Hands, "workers", workers, "mode", cfg.Mode, "seed", cfg.Seed)

	per, remainder := cfg.Hands/workers, cfg.Hands%workers
	tallies := make([]*tally, workers)

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		n := per
		if w < remainder {
			n++
		}
		t := newTally()
		tallies[w] = t
		rng := randutil.Stream(cfg.Seed, w)

		g.Go(func() error {
			return r.work(gctx, cfg, rng, n, t, &done)
		})
	}

	err := g.Wait()
	for _, t := range tallies {
		report.merge(t)
	}
	report.Elapsed = r.clock.Since(report.Started)

	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		report.Truncated = true
		if timedOut.Load() {
			r.logger.Info("Time limit reached", "limit", cfg.TimeLimit, "hands", report.Hands)
		} else {
			r.logger.Warn("Survey cancelled", "hands", report.Hands)
		}
	}

	r.logger.Info("Survey finished",
		"hands", report.Hands,
		"winning", report.Winning,
		"truncated", report.Truncated,
		"elapsed", report.Elapsed)
	return report, nil
}

func (r *Runner) work(ctx context.Context, cfg Config, rng *rand.Rand, n int, t *tally, done *atomic.Int64) error {
	var dealer *Dealer
	if cfg.Mode == ModeWall {
		dealer = NewDealer(rng, cfg.RedFives)
	}

	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}

		var hand mahjong.Hand
		if dealer != nil {
			hand = dealer.Deal()
		} else {
			hand = CompleteHand(rng)
		}

		res, err := r.evaluator.Evaluate(hand, cfg.Player, cfg.Table)
		if err != nil {
			return fmt.Errorf("evaluate %s: %w", hand, err)
		}
		t.add(res)
		done.Add(1)
	}
	return nil
}
