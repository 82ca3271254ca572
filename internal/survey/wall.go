package survey

import (
	rand "math/rand/v2"

	"github.com/lox/riichi/mahjong"
)

// WallSize is the number of tiles in a full set.
const WallSize = 136

var kinds = func() mahjong.Hand {
	var h mahjong.Hand
	for _, suit := range []mahjong.Suit{mahjong.Man, mahjong.Pin, mahjong.Sou} {
		for rank := uint8(1); rank <= 9; rank++ {
			h = append(h, mahjong.NewTile(suit, rank))
		}
	}
	return append(h,
		mahjong.East, mahjong.South, mahjong.West, mahjong.North,
		mahjong.White, mahjong.Green, mahjong.Red,
	)
}()

// NewWall returns the 136-tile set in sorted order. With redFives one five of
// each suit is replaced by its red copy.
func NewWall(redFives bool) mahjong.Hand {
	wall := make(mahjong.Hand, 0, WallSize)
	for _, k := range kinds {
		for n := range 4 {
			if redFives && n == 0 && k.IsSuited() && k.Rank() == 5 {
				wall = append(wall, mahjong.NewRedFive(k.Suit()))
				continue
			}
			wall = append(wall, k)
		}
	}
	return wall
}

// Dealer draws hands from a private copy of the wall.
type Dealer struct {
	wall mahjong.Hand
	rng  *rand.Rand
}

// NewDealer creates a dealer over a fresh wall.
func NewDealer(rng *rand.Rand, redFives bool) *Dealer {
	return &Dealer{wall: NewWall(redFives), rng: rng}
}

// Deal shuffles the first HandSize positions of the wall and returns a copy of
// them. The wall stays a permutation of the full set between deals.
func (d *Dealer) Deal() mahjong.Hand {
	n := len(d.wall)
	for i := range mahjong.HandSize {
		j := i + d.rng.IntN(n-i)
		d.wall[i], d.wall[j] = d.wall[j], d.wall[i]
	}
	return append(mahjong.Hand(nil), d.wall[:mahjong.HandSize]...)
}

// CompleteHand builds four random melds and a pair without using any tile
// kind more than four times. About half the melds are runs.
func CompleteHand(rng *rand.Rand) mahjong.Hand {
	for {
		var counts [numKinds]int
		hand := make(mahjong.Hand, 0, mahjong.HandSize)
		ok := true
		take := func(t mahjong.Tile) {
			i := kindIndex(t)
			counts[i]++
			if counts[i] > 4 {
				ok = false
			}
			hand = append(hand, t)
		}

		for range 4 {
			t := kinds[rng.IntN(len(kinds))]
			if t.IsSuited() && t.Rank() <= 7 && rng.IntN(2) == 0 {
				take(t)
				take(mahjong.NewTile(t.Suit(), t.Rank()+1))
				take(mahjong.NewTile(t.Suit(), t.Rank()+2))
				continue
			}
			take(t)
			take(t)
			take(t)
		}
		pair := kinds[rng.IntN(len(kinds))]
		take(pair)
		take(pair)

		if ok {
			rng.Shuffle(len(hand), func(i, j int) { hand[i], hand[j] = hand[j], hand[i] })
			return hand
		}
	}
}

const numKinds = 34

func kindIndex(t mahjong.Tile) int {
	switch {
	case t.IsSuited():
		return (int(t.Suit())/32-1)*9 + int(t.Rank()) - 1
	case t.IsWind():
		return 27 + int(t.Rank()) - 1
	default:
		return 31 + int(t.Rank()) - 1
	}
}
