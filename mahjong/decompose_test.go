package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/riichi/internal/randutil"
)

func sortedWithOcc(t testing.TB, s string) (Hand, Occurrences) {
	t.Helper()
	sorted := MustParseHand(s).Sorted()
	occ, err := GroupOccurrences(sorted)
	require.NoError(t, err)
	return sorted, occ
}

func TestCanFormHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand string
		want bool
	}{
		{"four triplets and a pair", "111222m55577p999s", true},
		{"four runs and a pair", "123456789m123p55s", true},
		{"honor triplets", "123m456p789s11122z", true},
		{"red five in a run", "340m678p999s11122z", true},
		{"red five in a triplet", "055m789p11z", true},
		{"red five completes a group of four", "340555m789p11122z", true},
		{"run needs count reduction", "112233m456p789s55z", true},
		{"triplet first then runs", "111123m456p789s55z", true},
		{"honors never form runs", "123z456m789m111p22p", false},
		{"no pair", "123m456p789s11123z", false},
		{"two pairs and a single", "123m456p789s11223z", false},
		{"bare pair", "55m", true},
		{"bare pair with red five", "05p", true},
		{"bare non-pair", "56m", false},
		{"five tile remainder", "12355m", true},
		{"all nines", "111999m111999p99s", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted, occ := sortedWithOcc(t, tt.hand)
			assert.Equal(t, tt.want, CanFormHand(sorted, occ), "hand %s", sorted)
		})
	}
}

// The decomposer only tries the first triplet and the first run at each
// level. These complete hands are rejected because of that.
func TestCanFormHandRestrictedSearch(t *testing.T) {
	t.Parallel()
	hands := []string{
		"11234m",
		"11234m456p789p111s",
		"11123455678999m",
	}

	for _, h := range hands {
		sorted, occ := sortedWithOcc(t, h)
		assert.True(t, referenceComplete(sorted), "%s is complete", h)
		assert.False(t, CanFormHand(sorted, occ), "%s is rejected by the restricted search", h)
	}
}

func TestCanFormHandRejectsBadGrouping(t *testing.T) {
	t.Parallel()
	sorted := MustParseHand("55m").Sorted()

	assert.False(t, CanFormHand(nil, nil))
	assert.False(t, CanFormHand(sorted, Occurrences{1}))
	assert.False(t, CanFormHand(sorted, Occurrences{2, 0}))
}

func TestCanFormHandDoesNotModifyInput(t *testing.T) {
	t.Parallel()
	sorted, occ := sortedWithOcc(t, "112233m456p789s55z")
	sortedCopy := append(Hand(nil), sorted...)
	occCopy := append(Occurrences(nil), occ...)

	require.True(t, CanFormHand(sorted, occ))
	assert.Equal(t, sortedCopy, sorted)
	assert.Equal(t, occCopy, occ)
}

func TestCanFormHandLongerHand(t *testing.T) {
	t.Parallel()
	// longer than HandSize falls back to a fresh arena
	sorted, occ := sortedWithOcc(t, "111222333m456p789s11z")
	assert.True(t, CanFormHand(sorted, occ))
}

func TestFindRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name              string
		hand              string
		wantHand, wantOcc int
	}{
		{"first run", "123m", 0, 0},
		{"skips duplicate counts", "1123m", 0, 0},
		{"after a gap", "13456m", 1, 1},
		{"across suits is no run", "89m1p", -1, -1},
		{"stops at honors", "11z", -1, -1},
		{"second suit", "19m234p", 2, 2},
		{"red five", "34077m", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted, occ := sortedWithOcc(t, tt.hand)
			h, o := FindRun(sorted, occ)
			assert.Equal(t, tt.wantHand, h)
			assert.Equal(t, tt.wantOcc, o)
		})
	}
}

func TestFindTripletAndPair(t *testing.T) {
	t.Parallel()
	sorted, occ := sortedWithOcc(t, "1111m22p333s44z")

	h, o := FindTriplet(sorted, occ)
	assert.Equal(t, 6, h, "a group of four is not a triplet")
	assert.Equal(t, 2, o)

	h, o = FindPair(sorted, occ)
	assert.Equal(t, 4, h)
	assert.Equal(t, 1, o)

	h, o = FindOccurrence(occ, 5)
	assert.Equal(t, -1, h)
	assert.Equal(t, -1, o)
}

func TestArenaCapacity(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 40, arenaCapacity(HandSize))
	assert.Equal(t, 2, arenaCapacity(2))
	assert.Equal(t, 0, arenaCapacity(0))
}

// tileIndex maps a tile to 0-33 for the reference decomposer.
func tileIndex(t Tile) int {
	switch {
	case t.IsSuited():
		return (int(t.Suit())/32-1)*9 + int(t.Rank()) - 1
	case t.IsWind():
		return 27 + int(t.Rank()) - 1
	default:
		return 31 + int(t.Rank()) - 1
	}
}

// referenceComplete is an exhaustive search for melds plus one pair.
func referenceComplete(hand Hand) bool {
	var counts [34]int
	for _, t := range hand {
		counts[tileIndex(t)]++
	}
	return referenceSearch(&counts, false)
}

func referenceSearch(c *[34]int, pair bool) bool {
	i := 0
	for i < len(c) && c[i] == 0 {
		i++
	}
	if i == len(c) {
		return pair
	}

	if !pair && c[i] >= 2 {
		c[i] -= 2
		ok := referenceSearch(c, true)
		c[i] += 2
		if ok {
			return true
		}
	}
	if c[i] >= 3 {
		c[i] -= 3
		ok := referenceSearch(c, pair)
		c[i] += 3
		if ok {
			return true
		}
	}
	if i < 27 && i%9 <= 6 && c[i+1] > 0 && c[i+2] > 0 {
		c[i]--
		c[i+1]--
		c[i+2]--
		ok := referenceSearch(c, pair)
		c[i]++
		c[i+1]++
		c[i+2]++
		if ok {
			return true
		}
	}
	return false
}

var kinds = func() Hand {
	var h Hand
	for _, suit := range []Suit{Man, Pin, Sou} {
		for rank := uint8(1); rank <= 9; rank++ {
			h = append(h, NewTile(suit, rank))
		}
	}
	return append(h, East, South, West, North, White, Green, Red)
}()

// buildCompleteHand assembles four random melds and a pair, never using a
// tile kind more than four times.
func buildCompleteHand(rng interface{ IntN(int) int }, tripletsOnly bool) Hand {
	for {
		var counts [34]int
		var hand Hand
		ok := true

		take := func(t Tile) {
			idx := tileIndex(t)
			counts[idx]++
			if counts[idx] > 4 {
				ok = false
			}
			hand = append(hand, t)
		}

		for range 4 {
			t := kinds[rng.IntN(len(kinds))]
			if !tripletsOnly && t.IsSuited() && t.Rank() <= 7 && rng.IntN(2) == 0 {
				take(t)
				take(NewTile(t.Suit(), t.Rank()+1))
				take(NewTile(t.Suit(), t.Rank()+2))
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
			return hand
		}
	}
}

func TestCanFormHandSoundness(t *testing.T) {
	t.Parallel()
	rng := randutil.New(20240607)

	rejected := 0
	const trials = 5000
	for range trials {
		hand := buildCompleteHand(rng, false)
		require.True(t, referenceComplete(hand), "generator produced incomplete hand %s", hand)

		sorted := hand.Sorted()
		occ, err := GroupOccurrences(sorted)
		require.NoError(t, err)

		if CanFormHand(sorted, occ) {
			require.True(t, referenceComplete(sorted), "accepted hand %s has no decomposition", sorted)
		} else {
			rejected++
		}
	}
	t.Logf("restricted search rejected %d of %d complete hands", rejected, trials)
}

func TestCanFormHandAcceptsAllTripletHands(t *testing.T) {
	t.Parallel()
	rng := randutil.New(7)

	for range 2000 {
		sorted := buildCompleteHand(rng, true).Sorted()
		occ, err := GroupOccurrences(sorted)
		require.NoError(t, err)
		require.True(t, CanFormHand(sorted, occ), "triplet hand %s", sorted)
	}
}

func TestCanFormHandNeverAcceptsIncompleteHands(t *testing.T) {
	t.Parallel()
	rng := randutil.New(99)

	for range 5000 {
		hand := make(Hand, HandSize)
		for i := range hand {
			hand[i] = kinds[rng.IntN(len(kinds))]
		}
		sorted := hand.Sorted()
		occ, err := GroupOccurrences(sorted)
		require.NoError(t, err)
		if CanFormHand(sorted, occ) {
			require.True(t, referenceComplete(sorted), "accepted hand %s has no decomposition", sorted)
		}
	}
}
