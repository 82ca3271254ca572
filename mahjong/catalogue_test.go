package mahjong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchNames(res Result) []string {
	names := make([]string, 0, len(res.Yaku))
	for _, m := range res.Yaku {
		names = append(names, m.Name)
	}
	return names
}

func TestDefaultCatalogueYaku(t *testing.T) {
	t.Parallel()

	closed := &PlayerInfo{Seat: SeatSouth, IsHandClosed: true}
	open := &PlayerInfo{Seat: SeatSouth}
	riichi := &PlayerInfo{Seat: SeatSouth, IsHandClosed: true, CalledRiichi: true}
	eastRound := &TableInfo{RoundWind: SeatEast}

	tests := []struct {
		name   string
		hand   string
		player *PlayerInfo
		table  *TableInfo
		want   []string
	}{
		{
			name:   "no yaku",
			hand:   "123m456p789s11199m",
			player: open,
			want:   []string{},
		},
		{
			name:   "riichi needs a closed hand",
			hand:   "123m456p789s11199m",
			player: riichi,
			want:   []string{"Riichi"},
		},
		{
			name:   "all simples",
			hand:   "234m456p678s22255m",
			player: open,
			want:   []string{"All Simples"},
		},
		{
			name:   "dragon triplets",
			hand:   "123m456p555666z77z",
			player: open,
			want:   []string{"White Dragon", "Green Dragon"},
		},
		{
			name:   "seat and round wind",
			hand:   "123m456p111222z55m",
			player: open,
			table:  eastRound,
			want:   []string{"Seat Wind", "Round Wind"},
		},
		{
			name:   "seven pairs closed",
			hand:   "1199m2288p3377s11z",
			player: closed,
			want:   []string{"Seven Pairs"},
		},
		{
			name:   "seven pairs open hand",
			hand:   "1199m2288p3377s11z",
			player: open,
			want:   []string{},
		},
		{
			name:   "thirteen orphans",
			hand:   "19m19p19s11234567z",
			player: closed,
			want:   []string{"Thirteen Orphans"},
		},
		{
			name:   "all triplets",
			hand:   "111m222p333s444m55s",
			player: open,
			want:   []string{"All Triplets"},
		},
		{
			name:   "full flush",
			hand:   "11123456788899m",
			player: open,
			want:   []string{"Full Flush"},
		},
		{
			name:   "half flush",
			hand:   "123456789p11155z",
			player: open,
			want:   []string{"Half Flush"},
		},
		{
			name:   "terminals and honors",
			hand:   "111m999p111s55566z",
			player: open,
			want:   []string{"White Dragon", "All Triplets", "All Terminals and Honors"},
		},
		{
			name:   "all honors",
			hand:   "11122233355566z",
			player: open,
			table:  eastRound,
			want:   []string{"White Dragon", "Seat Wind", "Round Wind", "All Triplets", "All Honors"},
		},
	}

	ev := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ev.Evaluate(MustParseHand(tt.hand), tt.player, tt.table)
			require.NoError(t, err)
			require.True(t, res.Winning, "hand %s should be complete", tt.hand)
			assert.Equal(t, tt.want, matchNames(res))
		})
	}
}

func TestCatalogueOrderAndLookup(t *testing.T) {
	t.Parallel()
	c := DefaultCatalogue()

	names := c.Names()
	require.Equal(t, c.Len(), len(names))
	assert.Equal(t, "Thirteen Orphans", names[0])

	y, err := c.Lookup("Riichi")
	require.NoError(t, err)
	assert.Equal(t, 1, y.Han)
	assert.True(t, y.Remarks.Has(ClosedHandOnly|RequiresRiichi))

	_, err = c.Lookup("Nagashi Mangan")
	assert.ErrorIs(t, err, ErrUnknownYaku)
}

func TestCatalogueYakuReturnsCopy(t *testing.T) {
	t.Parallel()
	c := DefaultCatalogue()

	yaku := c.Yaku()
	yaku[0].Name = "changed"
	assert.Equal(t, "Thirteen Orphans", c.Names()[0])
}

func TestCatalogueFilter(t *testing.T) {
	t.Parallel()

	filtered, err := DefaultCatalogue().Filter("All Simples", "Riichi")
	require.NoError(t, err)
	assert.Equal(t, []string{"Riichi", "All Simples"}, filtered.Names())

	_, err = DefaultCatalogue().Filter("Riichi", "Dora")
	assert.ErrorIs(t, err, ErrUnknownYaku)
}

func TestNewCatalogueValidation(t *testing.T) {
	t.Parallel()
	always := RuleFunc(func(Hand, Occurrences, *PlayerInfo, *TableInfo) bool { return true })

	_, err := NewCatalogue(Yaku{Name: "", Han: 1, Rule: always})
	assert.Error(t, err)

	_, err = NewCatalogue(Yaku{Name: "Nothing", Han: 1})
	assert.Error(t, err)

	_, err = NewCatalogue(Yaku{Name: "Twice", Rule: always}, Yaku{Name: "Twice", Rule: always})
	assert.Error(t, err)

	c, err := NewCatalogue(Yaku{Name: "Always", Han: 1, Rule: always})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	assert.Panics(t, func() { MustNewCatalogue(Yaku{Name: "Nothing"}) })
}

func TestRemarkFlags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "always", Always.String())
	assert.Equal(t, "closed|riichi", (ClosedHandOnly | RequiresRiichi).String())
	assert.Equal(t, "dealer|non-dealer", (DealerHandOnly | NonDealerHandOnly).String())

	dealer := &PlayerInfo{Seat: SeatEast, IsHandClosed: true}
	south := &PlayerInfo{Seat: SeatSouth, CalledRiichi: true, IsHandClosed: true}

	assert.True(t, Always.Allows(nil))
	assert.False(t, ClosedHandOnly.Allows(nil))
	assert.True(t, DealerHandOnly.Allows(dealer))
	assert.False(t, DealerHandOnly.Allows(south))
	assert.True(t, NonDealerHandOnly.Allows(south))
	assert.False(t, NonDealerHandOnly.Allows(dealer))
	assert.False(t, RequiresRiichi.Allows(dealer))
	assert.True(t, (ClosedHandOnly | RequiresRiichi).Allows(south))
}
