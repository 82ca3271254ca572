package mahjong

import "errors"

var (
	// ErrEmptyHand is returned when grouping is asked to work on no tiles.
	ErrEmptyHand = errors.New("empty hand")

	// ErrInvalidHandShape is returned when a top-level check receives a hand
	// that is not exactly HandSize tiles long.
	ErrInvalidHandShape = errors.New("invalid hand shape")

	// ErrInvalidTile is returned for tile values or notation outside the tile set.
	ErrInvalidTile = errors.New("invalid tile")

	// ErrInternalInvariant signals a defect in grouping rather than bad input.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrUnknownYaku is returned when a catalogue lookup names no registered yaku.
	ErrUnknownYaku = errors.New("unknown yaku")
)
