package mahjong

import "slices"

// Tile is a single mahjong tile packed into one byte.
//
// Layout: bits 0-3 hold the rank (1-9 for suited tiles, 1-4 for winds, 1-3 for
// dragons), bit 4 marks a red five, bits 5-6 hold the suit and bit 7 selects
// dragons over winds for honor tiles. A tile with no suit bits is an honor.
type Tile uint8

// Suit identifies the numbered suit of a tile. Honors have suit Honor.
type Suit uint8

const (
	Honor Suit = 0
	Man   Suit = 32
	Pin   Suit = 64
	Sou   Suit = 96
)

const (
	rankMask  Tile = 0x0F
	redFlag   Tile = 0x10
	suitMask  Tile = 0x60
	honorMask Tile = 0x80

	wind   Tile = 0x00
	dragon Tile = 0x80
)

// Honor tiles.
const (
	East  Tile = wind | 1
	South Tile = wind | 2
	West  Tile = wind | 3
	North Tile = wind | 4

	White Tile = dragon | 1
	Green Tile = dragon | 2
	Red   Tile = dragon | 3
)

// NewTile creates a suited tile. Rank must be 1-9.
func NewTile(suit Suit, rank uint8) Tile {
	return Tile(suit) | Tile(rank)&rankMask
}

// NewRedFive creates the red five of the given suit.
func NewRedFive(suit Suit) Tile {
	return NewTile(suit, 5) | redFlag
}

// IsHonor reports whether the tile is a wind or a dragon.
func (t Tile) IsHonor() bool { return t&suitMask == 0 }

// IsSuited reports whether the tile belongs to one of the numbered suits.
func (t Tile) IsSuited() bool { return t&suitMask != 0 }

// IsRed reports whether the tile is a red five.
func (t Tile) IsRed() bool { return t.IsSuited() && t&redFlag == redFlag }

// IsWind reports whether the tile is one of the four winds.
func (t Tile) IsWind() bool { return t.IsHonor() && t&honorMask == wind }

// IsDragon reports whether the tile is one of the three dragons.
func (t Tile) IsDragon() bool { return t.IsHonor() && t&honorMask == dragon }

// Suit returns the numbered suit of the tile, or Honor.
func (t Tile) Suit() Suit { return Suit(t & suitMask) }

// Rank returns the rank of the tile: 1-9 for suited tiles, the wind or dragon
// identity for honors.
func (t Tile) Rank() uint8 { return uint8(t & rankMask) }

// Normalize clears the red five marker.
func (t Tile) Normalize() Tile {
	if t.IsSuited() {
		return t &^ redFlag
	}
	return t
}

// IsTerminal reports whether the tile is a suited one or nine.
func (t Tile) IsTerminal() bool {
	return t.IsSuited() && (t.Rank() == 1 || t.Rank() == 9)
}

// IsSimple reports whether the tile is a suited two through eight.
func (t Tile) IsSimple() bool {
	return t.IsSuited() && t.Rank() >= 2 && t.Rank() <= 8
}

// IsTerminalOrHonor reports whether the tile is a terminal or an honor.
func (t Tile) IsTerminalOrHonor() bool { return t.IsHonor() || t.IsTerminal() }

// Valid reports whether the tile is one of the 34 tile kinds (plus the three
// red fives).
func (t Tile) Valid() bool {
	rank := t.Rank()
	if t.IsSuited() {
		if t&honorMask != 0 || rank < 1 || rank > 9 {
			return false
		}
		return t&redFlag == 0 || rank == 5
	}
	if t&redFlag != 0 {
		return false
	}
	if t.IsDragon() {
		return rank >= 1 && rank <= 3
	}
	return rank >= 1 && rank <= 4
}

// Compare orders tiles: suited tiles by suit then rank with the red marker
// ignored, followed by all honors ordered by their raw value (winds before
// dragons).
func Compare(a, b Tile) int {
	switch {
	case a.IsHonor() && b.IsHonor():
		return int(a) - int(b)
	case a.IsSuited() && b.IsHonor():
		return -1
	case a.IsHonor() && b.IsSuited():
		return 1
	}
	return int(a&^redFlag) - int(b&^redFlag)
}

// PairsWith reports whether two tiles are the same logical tile, ignoring the
// red five marker.
func PairsWith(a, b Tile) bool {
	return a.Normalize() == b.Normalize()
}

// Hand is a collection of tiles.
type Hand []Tile

// Sorted returns a sorted copy of the hand. The receiver is not modified.
func (h Hand) Sorted() Hand {
	sorted := slices.Clone(h)
	slices.SortStableFunc(sorted, Compare)
	return sorted
}

// IsSorted reports whether the hand is in Compare order.
func (h Hand) IsSorted() bool {
	return slices.IsSortedFunc(h, Compare)
}
