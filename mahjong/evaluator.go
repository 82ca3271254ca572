package mahjong

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Shape is the whole-hand form that made a hand complete.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeStandard
	ShapeSevenPairs
	ShapeThirteenOrphans
)

// String returns a human-readable shape name.
func (s Shape) String() string {
	switch s {
	case ShapeStandard:
		return "Standard"
	case ShapeSevenPairs:
		return "Seven Pairs"
	case ShapeThirteenOrphans:
		return "Thirteen Orphans"
	default:
		return "None"
	}
}

// MarshalText lets shapes appear by name in JSON output.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a name produced by MarshalText.
func (s *Shape) UnmarshalText(text []byte) error {
	for _, candidate := range []Shape{ShapeNone, ShapeStandard, ShapeSevenPairs, ShapeThirteenOrphans} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown shape %q", text)
}

// CompleteShape returns the first shape the hand satisfies: the standard
// four melds and a pair, then seven pairs, then thirteen orphans.
func CompleteShape(sorted Hand, occ Occurrences) Shape {
	switch {
	case CanFormHand(sorted, occ):
		return ShapeStandard
	case IsSevenPairs(sorted, occ):
		return ShapeSevenPairs
	case IsThirteenOrphans(sorted, occ):
		return ShapeThirteenOrphans
	}
	return ShapeNone
}

// IsCompleteHand reports whether the sorted hand has any complete shape.
func IsCompleteHand(sorted Hand, occ Occurrences) bool {
	return CompleteShape(sorted, occ) != ShapeNone
}

// Result is the outcome of evaluating one hand. A complete hand with no
// matching yaku is still Winning.
type Result struct {
	Winning bool    `json:"winning"`
	Shape   Shape   `json:"shape"`
	Yaku    []Match `json:"yaku"`
}

// Han returns the sum of the matched yaku values.
func (r Result) Han() int {
	total := 0
	for _, m := range r.Yaku {
		total += m.Han
	}
	return total
}

// Evaluator checks hands against a yaku catalogue. It holds no per-call
// state and is safe for concurrent use.
type Evaluator struct {
	catalogue      *Catalogue
	logger         *log.Logger
	enforceRemarks bool
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithCatalogue replaces the default catalogue.
func WithCatalogue(c *Catalogue) Option {
	return func(e *Evaluator) {
		if c != nil {
			e.catalogue = c
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *log.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger.WithPrefix("evaluator")
		}
	}
}

// WithRemarkEnforcement makes the evaluator skip yaku whose remark flags the
// player does not satisfy. By default remarks are left to each rule.
func WithRemarkEnforcement(enabled bool) Option {
	return func(e *Evaluator) {
		e.enforceRemarks = enabled
	}
}

// NewEvaluator creates an evaluator using the default catalogue unless
// overridden.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		catalogue: DefaultCatalogue(),
		logger:    log.NewWithOptions(io.Discard, log.Options{Level: log.WarnLevel}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalogue returns the catalogue the evaluator checks.
func (e *Evaluator) Catalogue() *Catalogue {
	return e.catalogue
}

// Evaluate decides whether a HandSize-tile hand is complete and, if so, which
// yaku it satisfies. The caller's hand is not modified and the contexts are
// only passed through to the yaku rules. Rules that panic are not recovered.
func (e *Evaluator) Evaluate(hand Hand, player *PlayerInfo, table *TableInfo) (Result, error) {
	if len(hand) != HandSize {
		return Result{}, fmt.Errorf("%w: got %d tiles, want %d", ErrInvalidHandShape, len(hand), HandSize)
	}
	for i, t := range hand {
		if !t.Valid() {
			return Result{}, fmt.Errorf("%w: %#02x at position %d", ErrInvalidTile, uint8(t), i)
		}
	}

	sorted := hand.Sorted()
	occ, err := GroupOccurrences(sorted)
	if err != nil {
		return Result{}, err
	}
	if err := occ.check(sorted); err != nil {
		return Result{}, err
	}

	shape := CompleteShape(sorted, occ)
	if shape == ShapeNone {
		e.logger.Debug("Hand incomplete", "hand", sorted)
		return Result{Yaku: []Match{}}, nil
	}

	matches := []Match{}
	for _, y := range e.catalogue.yaku {
		if e.enforceRemarks && !y.Remarks.Allows(player) {
			continue
		}
		if y.Rule.Matches(sorted, occ, player, table) {
			matches = append(matches, Match{Name: y.Name, Han: y.Han})
		}
	}

	e.logger.Debug("Hand complete", "hand", sorted, "shape", shape, "yaku", len(matches))
	return Result{Winning: true, Shape: shape, Yaku: matches}, nil
}

var defaultEvaluator = NewEvaluator()

// Evaluate checks a hand with the default catalogue.
func Evaluate(hand Hand, player *PlayerInfo, table *TableInfo) (Result, error) {
	return defaultEvaluator.Evaluate(hand, player, table)
}
