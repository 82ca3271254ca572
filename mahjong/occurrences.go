package mahjong

import "fmt"

// Occurrences holds, for each distinct tile of a sorted hand, how many times
// it appears. Entries are index-aligned with the distinct tiles in sorted
// order and are always at least one.
type Occurrences []int

// GroupOccurrences collapses runs of equivalent tiles in an already sorted
// hand into their counts. The hand is not re-sorted.
func GroupOccurrences(sorted Hand) (Occurrences, error) {
	if len(sorted) == 0 {
		return nil, ErrEmptyHand
	}

	occ := make(Occurrences, 0, len(sorted))
	occ = append(occ, 1)
	current := sorted[0]
	for _, t := range sorted[1:] {
		if PairsWith(current, t) {
			occ[len(occ)-1]++
			continue
		}
		current = t
		occ = append(occ, 1)
	}
	return occ, nil
}

// Total returns the number of tiles covered by the grouping.
func (o Occurrences) Total() int {
	total := 0
	for _, n := range o {
		total += n
	}
	return total
}

// Distinct returns the first tile of every group in the sorted hand.
func (o Occurrences) Distinct(sorted Hand) Hand {
	distinct := make(Hand, 0, len(o))
	idx := 0
	for _, n := range o {
		distinct = append(distinct, sorted[idx])
		idx += n
	}
	return distinct
}

// Split cuts the sorted hand into one sub-slice per group. The sub-slices
// share the hand's backing array.
func (o Occurrences) Split(sorted Hand) []Hand {
	groups := make([]Hand, 0, len(o))
	idx := 0
	for _, n := range o {
		groups = append(groups, sorted[idx:idx+n:idx+n])
		idx += n
	}
	return groups
}

// check verifies the grouping covers the sorted hand exactly.
func (o Occurrences) check(sorted Hand) error {
	if total := o.Total(); total != len(sorted) {
		return fmt.Errorf("%w: occurrences cover %d tiles, hand has %d", ErrInternalInvariant, total, len(sorted))
	}
	for i, n := range o {
		if n < 1 {
			return fmt.Errorf("%w: occurrence %d has count %d", ErrInternalInvariant, i, n)
		}
	}
	return nil
}

// compact removes zero counts in place and returns the shortened slice.
func compact(occ []int) []int {
	n := 0
	for _, c := range occ {
		if c != 0 {
			occ[n] = c
			n++
		}
	}
	return occ[:n]
}
