package mahjong

import (
	"fmt"
	"strings"
)

// honorOrder maps the numeric honor notation (1z-7z) to tiles.
var honorOrder = [...]Tile{East, South, West, North, White, Green, Red}

var suitLetters = map[Suit]byte{
	Man:   'm',
	Pin:   'p',
	Sou:   's',
	Honor: 'z',
}

// String returns the tile in compact notation, e.g. "5m", "0p" (red five) or "7z".
func (t Tile) String() string {
	if !t.Valid() {
		return "??"
	}
	return string(t.digit()) + string(suitLetters[t.Suit()])
}

func (t Tile) digit() byte {
	if t.IsRed() {
		return '0'
	}
	if t.IsDragon() {
		return '4' + t.Rank()
	}
	return '0' + t.Rank()
}

// String returns the hand in grouped notation, e.g. "123m456p11z".
func (h Hand) String() string {
	var sb strings.Builder
	for i, t := range h {
		if !t.Valid() {
			sb.WriteString("??")
			continue
		}
		sb.WriteByte(t.digit())
		if i == len(h)-1 || !h[i+1].Valid() || h[i+1].Suit() != t.Suit() {
			sb.WriteByte(suitLetters[t.Suit()])
		}
	}
	return sb.String()
}

// ParseTile parses a single tile such as "5m", "0s" or "6z".
func ParseTile(s string) (Tile, error) {
	hand, err := ParseHand(s)
	if err != nil {
		return 0, err
	}
	if len(hand) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single tile", ErrInvalidTile, s)
	}
	return hand[0], nil
}

// ParseHand parses grouped tile notation. Digits accumulate until a suit
// letter (m, p, s, z) closes the group. Whitespace is ignored.
func ParseHand(s string) (Hand, error) {
	var hand Hand
	var pending []byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == ',':
			continue
		case c >= '0' && c <= '9':
			pending = append(pending, c)
		default:
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w: suit %q at offset %d has no ranks", ErrInvalidTile, c, i)
			}
			for _, d := range pending {
				t, err := tileFromNotation(d, c)
				if err != nil {
					return nil, err
				}
				hand = append(hand, t)
			}
			pending = pending[:0]
		}
	}

	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: ranks %q have no suit", ErrInvalidTile, string(pending))
	}
	return hand, nil
}

// MustParseHand is like ParseHand but panics on error. Intended for tests and
// fixed tables.
func MustParseHand(s string) Hand {
	hand, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return hand
}

func tileFromNotation(digit, letter byte) (Tile, error) {
	var suit Suit
	switch letter {
	case 'm', 'M':
		suit = Man
	case 'p', 'P':
		suit = Pin
	case 's', 'S':
		suit = Sou
	case 'z', 'Z':
		if digit < '1' || digit > '7' {
			return 0, fmt.Errorf("%w: honor %c%c", ErrInvalidTile, digit, letter)
		}
		return honorOrder[digit-'1'], nil
	default:
		return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidTile, letter)
	}

	if digit == '0' {
		return NewRedFive(suit), nil
	}
	return NewTile(suit, digit-'0'), nil
}
