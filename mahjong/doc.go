// Package mahjong decides whether a riichi mahjong hand is complete and
// which yaku it satisfies.
//
// Tiles are packed into a single byte (see Tile). A hand is sorted with
// Compare, grouped into Occurrences, and then tested against three complete
// shapes: four melds and a pair (CanFormHand), seven pairs and thirteen
// orphans. Complete hands are matched against an ordered Catalogue of yaku
// rules.
//
//	hand := mahjong.MustParseHand("123m456p789s11122z")
//	res, err := mahjong.Evaluate(hand, &mahjong.PlayerInfo{Seat: mahjong.SeatEast, IsHandClosed: true}, nil)
package mahjong
