package mahjong

// Yakuman are counted as 13 han.
const yakumanHan = 13

var defaultCatalogue = MustNewCatalogue(
	Yaku{Name: "Thirteen Orphans", Han: yakumanHan, Remarks: ClosedHandOnly, Rule: RuleFunc(thirteenOrphansRule)},
	Yaku{Name: "Riichi", Han: 1, Remarks: ClosedHandOnly | RequiresRiichi, Rule: RuleFunc(riichiRule)},
	Yaku{Name: "Seven Pairs", Han: 2, Remarks: ClosedHandOnly, Rule: RuleFunc(sevenPairsRule)},
	Yaku{Name: "All Simples", Han: 1, Rule: RuleFunc(allSimplesRule)},
	Yaku{Name: "White Dragon", Han: 1, Rule: tripletOf(White)},
	Yaku{Name: "Green Dragon", Han: 1, Rule: tripletOf(Green)},
	Yaku{Name: "Red Dragon", Han: 1, Rule: tripletOf(Red)},
	Yaku{Name: "Seat Wind", Han: 1, Rule: RuleFunc(seatWindRule)},
	Yaku{Name: "Round Wind", Han: 1, Rule: RuleFunc(roundWindRule)},
	Yaku{Name: "All Triplets", Han: 2, Rule: RuleFunc(allTripletsRule)},
	Yaku{Name: "Half Flush", Han: 3, Rule: RuleFunc(halfFlushRule)},
	Yaku{Name: "Full Flush", Han: 6, Rule: RuleFunc(fullFlushRule)},
	Yaku{Name: "All Terminals and Honors", Han: 2, Rule: RuleFunc(terminalsAndHonorsRule)},
	Yaku{Name: "All Honors", Han: yakumanHan, Rule: RuleFunc(allHonorsRule)},
)

// DefaultCatalogue returns the built-in yaku in evaluation order. The
// catalogue is shared and must be treated as read-only.
func DefaultCatalogue() *Catalogue {
	return defaultCatalogue
}

func thirteenOrphansRule(sorted Hand, occ Occurrences, p *PlayerInfo, _ *TableInfo) bool {
	return p.closed() && IsThirteenOrphans(sorted, occ)
}

func riichiRule(_ Hand, _ Occurrences, p *PlayerInfo, _ *TableInfo) bool {
	return p.closed() && p.riichi()
}

func sevenPairsRule(sorted Hand, occ Occurrences, p *PlayerInfo, _ *TableInfo) bool {
	return p.closed() && IsSevenPairs(sorted, occ)
}

func allSimplesRule(sorted Hand, _ Occurrences, _ *PlayerInfo, _ *TableInfo) bool {
	for _, t := range sorted {
		if !t.IsSimple() {
			return false
		}
	}
	return true
}

// hasTriplet reports whether tile appears at least three times. Honors
// cannot form runs, so for them this means a triplet in any standard shape.
func hasTriplet(sorted Hand, occ Occurrences, tile Tile) bool {
	idx := 0
	for _, n := range occ {
		if n >= 3 && PairsWith(sorted[idx], tile) {
			return true
		}
		idx += n
	}
	return false
}

func tripletOf(tile Tile) Rule {
	return RuleFunc(func(sorted Hand, occ Occurrences, _ *PlayerInfo, _ *TableInfo) bool {
		return hasTriplet(sorted, occ, tile)
	})
}

func seatWindRule(sorted Hand, occ Occurrences, p *PlayerInfo, _ *TableInfo) bool {
	if p == nil {
		return false
	}
	return hasTriplet(sorted, occ, p.Seat.WindTile())
}

func roundWindRule(sorted Hand, occ Occurrences, _ *PlayerInfo, t *TableInfo) bool {
	wind, ok := t.roundWind()
	return ok && hasTriplet(sorted, occ, wind)
}

func allTripletsRule(_ Hand, occ Occurrences, _ *PlayerInfo, _ *TableInfo) bool {
	if len(occ) != 5 {
		return false
	}
	pairs := 0
	for _, n := range occ {
		switch n {
		case 2:
			pairs++
		case 3:
		default:
			return false
		}
	}
	return pairs == 1
}

// suitProfile returns the single suit used by the suited tiles (Honor if
// several suits or none appear) and whether any honor is present.
func suitProfile(sorted Hand) (suit Suit, single bool, honors bool) {
	for _, t := range sorted {
		if t.IsHonor() {
			honors = true
			continue
		}
		switch {
		case !single && suit == Honor:
			suit, single = t.Suit(), true
		case t.Suit() != suit:
			return Honor, false, honors
		}
	}
	return suit, single, honors
}

func halfFlushRule(sorted Hand, _ Occurrences, _ *PlayerInfo, _ *TableInfo) bool {
	_, single, honors := suitProfile(sorted)
	return single && honors
}

func fullFlushRule(sorted Hand, _ Occurrences, _ *PlayerInfo, _ *TableInfo) bool {
	_, single, honors := suitProfile(sorted)
	return single && !honors
}

func terminalsAndHonorsRule(sorted Hand, occ Occurrences, _ *PlayerInfo, _ *TableInfo) bool {
	if IsThirteenOrphans(sorted, occ) {
		return false
	}
	terminals, honors := false, false
	for _, t := range sorted {
		switch {
		case t.IsTerminal():
			terminals = true
		case t.IsHonor():
			honors = true
		default:
			return false
		}
	}
	return terminals && honors
}

func allHonorsRule(sorted Hand, _ Occurrences, _ *PlayerInfo, _ *TableInfo) bool {
	for _, t := range sorted {
		if !t.IsHonor() {
			return false
		}
	}
	return true
}
