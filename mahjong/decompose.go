package mahjong

import "sync"

// HandSize is the number of tiles in a hand checked for completion.
const HandSize = 14

// window addresses a sub-range of an arena buffer.
type window struct {
	off, n int
}

// arena is the scratch space for one decomposition. Every recursion level
// writes its remainder directly after its parent's window, so a hand of n
// tiles never needs more than n + (n-3) + (n-6) + ... slots.
type arena struct {
	size  int
	tiles []Tile
	occ   []int
}

func arenaCapacity(n int) int {
	total := 0
	for ; n > 0; n -= 3 {
		total += n
	}
	return total
}

func newArena(n int) *arena {
	c := arenaCapacity(n)
	return &arena{
		size:  n,
		tiles: make([]Tile, c),
		// a child's grouping is copied before compaction, so it can be as
		// long as its parent's
		occ: make([]int, c+n),
	}
}

var arenaPool = sync.Pool{
	New: func() any {
		return newArena(HandSize)
	},
}

func acquireArena(n int) *arena {
	if n <= HandSize {
		return arenaPool.Get().(*arena)
	}
	return newArena(n)
}

func releaseArena(a *arena) {
	if a.size == HandSize {
		arenaPool.Put(a)
	}
}

// CanFormHand reports whether the sorted tiles can be split into triplets and
// runs of three with a single pair left over.
//
// The search is deliberately restricted: at each level only the first
// triplet (a group of exactly three) and then the first run are tried. Other
// candidates of the same kind are never retried, so some complete hands
// (for example 11234m456p789p111s) are rejected.
func CanFormHand(sorted Hand, occ Occurrences) bool {
	if len(sorted) == 0 || occ.check(sorted) != nil {
		return false
	}

	a := acquireArena(len(sorted))
	defer releaseArena(a)

	copy(a.tiles, sorted)
	copy(a.occ, occ)
	return a.canForm(window{0, len(sorted)}, window{0, len(occ)})
}

func (a *arena) canForm(tw, ow window) bool {
	tiles := Hand(a.tiles[tw.off : tw.off+tw.n])
	occ := Occurrences(a.occ[ow.off : ow.off+ow.n])

	if len(tiles) == 2 {
		return PairsWith(tiles[0], tiles[1])
	}
	if len(tiles) < 3 {
		return false
	}

	child := window{tw.off + tw.n, tw.n - 3}
	childOcc := ow.off + ow.n

	if hi, oi := FindTriplet(tiles, occ); hi >= 0 {
		rest := a.tiles[child.off : child.off+child.n]
		n := copy(rest, tiles[:hi])
		copy(rest[n:], tiles[hi+3:])

		restOcc := a.occ[childOcc : childOcc+len(occ)]
		copy(restOcc, occ)
		restOcc[oi] -= 3
		restOcc = compact(restOcc)

		if a.canForm(child, window{childOcc, len(restOcc)}) {
			return true
		}
	}

	if hi, oi := FindRun(tiles, occ); hi >= 0 {
		restOcc := a.occ[childOcc : childOcc+len(occ)]
		copy(restOcc, occ)
		restOcc[oi]--
		restOcc[oi+1]--
		restOcc[oi+2]--

		rest := a.tiles[child.off : child.off+child.n]
		src, dst := 0, 0
		for i, n := range occ {
			dst += copy(rest[dst:], tiles[src:src+restOcc[i]])
			src += n
		}
		restOcc = compact(restOcc)

		if a.canForm(child, window{childOcc, len(restOcc)}) {
			return true
		}
	}

	return false
}

// FindOccurrence returns the hand index and group index of the first group
// holding exactly count tiles, or -1, -1.
func FindOccurrence(occ Occurrences, count int) (handIndex, occIndex int) {
	idx := 0
	for i, n := range occ {
		if n == count {
			return idx, i
		}
		idx += n
	}
	return -1, -1
}

// FindPair returns the position of the first group of exactly two tiles.
func FindPair(_ Hand, occ Occurrences) (handIndex, occIndex int) {
	return FindOccurrence(occ, 2)
}

// FindTriplet returns the position of the first group of exactly three tiles.
func FindTriplet(_ Hand, occ Occurrences) (handIndex, occIndex int) {
	return FindOccurrence(occ, 3)
}

// FindRun returns the position of the first three consecutive ranks of one
// suit, or -1, -1. Honors sort last, so the scan stops at the first honor.
func FindRun(sorted Hand, occ Occurrences) (handIndex, occIndex int) {
	var last Tile
	length := 0
	idx := 0
	startHand, startOcc := -1, -1

	for i, n := range occ {
		t := sorted[idx]
		if t.IsHonor() {
			return -1, -1
		}

		if length > 0 && last.Suit() == t.Suit() && int(t.Rank())-int(last.Rank()) == 1 {
			length++
			if length == 3 {
				return startHand, startOcc
			}
		} else {
			startHand, startOcc = idx, i
			length = 1
		}

		last = t
		idx += n
	}
	return -1, -1
}
