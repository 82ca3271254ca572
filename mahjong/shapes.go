package mahjong

import "slices"

// thirteenOrphans is the reference set for the thirteen orphans shape, in
// Compare order.
var thirteenOrphans = Hand{
	NewTile(Man, 1), NewTile(Man, 9),
	NewTile(Pin, 1), NewTile(Pin, 9),
	NewTile(Sou, 1), NewTile(Sou, 9),
	East, South, West, North,
	White, Green, Red,
}

// IsSevenPairs reports whether the hand is seven distinct pairs.
func IsSevenPairs(_ Hand, occ Occurrences) bool {
	if len(occ) != 7 {
		return false
	}
	for _, n := range occ {
		if n != 2 {
			return false
		}
	}
	return true
}

// IsThirteenOrphans reports whether the hand holds one of each terminal and
// honor plus a duplicate of one of them.
func IsThirteenOrphans(sorted Hand, occ Occurrences) bool {
	if len(occ) != len(thirteenOrphans) || len(sorted) != len(thirteenOrphans)+1 {
		return false
	}

	pair, _ := FindPair(sorted, occ)
	if pair < 0 {
		return false
	}

	var tiles [13]Tile
	n := copy(tiles[:], sorted[:pair])
	copy(tiles[n:], sorted[pair+1:])

	return slices.EqualFunc(tiles[:], thirteenOrphans, PairsWith)
}
