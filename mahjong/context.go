package mahjong

import (
	"fmt"
	"strings"
)

// Seat is a player's seat at the table. The same values name the round wind.
type Seat uint8

const (
	SeatNorth Seat = iota
	SeatEast
	SeatSouth
	SeatWest
)

// String returns the lower-case seat name.
func (s Seat) String() string {
	switch s {
	case SeatNorth:
		return "north"
	case SeatEast:
		return "east"
	case SeatSouth:
		return "south"
	case SeatWest:
		return "west"
	default:
		return "unknown"
	}
}

// WindTile returns the wind tile belonging to the seat.
func (s Seat) WindTile() Tile {
	switch s {
	case SeatEast:
		return East
	case SeatSouth:
		return South
	case SeatWest:
		return West
	default:
		return North
	}
}

// ParseSeat accepts full names ("east") or initials ("e"), case-insensitively.
func ParseSeat(s string) (Seat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return SeatNorth, nil
	case "east", "e":
		return SeatEast, nil
	case "south", "s":
		return SeatSouth, nil
	case "west", "w":
		return SeatWest, nil
	}
	return 0, fmt.Errorf("invalid seat: %q", s)
}

// PlayerInfo describes the player whose hand is evaluated.
type PlayerInfo struct {
	Seat         Seat
	IsHandClosed bool
	CalledRiichi bool
}

// IsDealer reports whether the player sits East.
func (p *PlayerInfo) IsDealer() bool {
	return p != nil && p.Seat == SeatEast
}

func (p *PlayerInfo) closed() bool {
	return p != nil && p.IsHandClosed
}

func (p *PlayerInfo) riichi() bool {
	return p != nil && p.CalledRiichi
}

// TableInfo carries table state for yaku rules. The evaluator passes it
// through untouched.
type TableInfo struct {
	RoundWind Seat
}

func (t *TableInfo) roundWind() (Tile, bool) {
	if t == nil {
		return 0, false
	}
	return t.RoundWind.WindTile(), true
}
