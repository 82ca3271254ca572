package mahjong

import (
	"fmt"
	"slices"
	"strings"
)

// RemarkFlags describe when a yaku may apply.
type RemarkFlags uint8

const (
	Always         RemarkFlags = 0
	ClosedHandOnly RemarkFlags = 1 << (iota - 1)
	RequiresRiichi
	DealerHandOnly
	NonDealerHandOnly
)

var remarkNames = []struct {
	flag RemarkFlags
	name string
}{
	{ClosedHandOnly, "closed"},
	{RequiresRiichi, "riichi"},
	{DealerHandOnly, "dealer"},
	{NonDealerHandOnly, "non-dealer"},
}

// Has reports whether all bits of flag are set.
func (r RemarkFlags) Has(flag RemarkFlags) bool {
	return r&flag == flag
}

// String returns the flags joined with "|", or "always".
func (r RemarkFlags) String() string {
	if r == Always {
		return "always"
	}
	var parts []string
	for _, rn := range remarkNames {
		if r.Has(rn.flag) {
			parts = append(parts, rn.name)
		}
	}
	return strings.Join(parts, "|")
}

// Allows reports whether a player satisfies every remark.
func (r RemarkFlags) Allows(p *PlayerInfo) bool {
	if r.Has(ClosedHandOnly) && !p.closed() {
		return false
	}
	if r.Has(RequiresRiichi) && !p.riichi() {
		return false
	}
	if r.Has(DealerHandOnly) && !p.IsDealer() {
		return false
	}
	if r.Has(NonDealerHandOnly) && p.IsDealer() {
		return false
	}
	return true
}

// Rule decides whether a complete hand satisfies a yaku. Implementations must
// not modify their arguments.
type Rule interface {
	Matches(sorted Hand, occ Occurrences, player *PlayerInfo, table *TableInfo) bool
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc func(sorted Hand, occ Occurrences, player *PlayerInfo, table *TableInfo) bool

// Matches calls f.
func (f RuleFunc) Matches(sorted Hand, occ Occurrences, player *PlayerInfo, table *TableInfo) bool {
	return f(sorted, occ, player, table)
}

// Yaku is a named scoring pattern.
type Yaku struct {
	Name    string
	Han     int
	Rule    Rule
	Remarks RemarkFlags
}

// Match is the descriptor reported for a satisfied yaku.
type Match struct {
	Name string `json:"name"`
	Han  int    `json:"han"`
}

// Catalogue is an ordered, immutable set of yaku.
type Catalogue struct {
	yaku []Yaku
}

// NewCatalogue builds a catalogue in the given order. Names must be unique
// and every yaku needs a rule.
func NewCatalogue(yaku ...Yaku) (*Catalogue, error) {
	seen := make(map[string]bool, len(yaku))
	for _, y := range yaku {
		if y.Name == "" {
			return nil, fmt.Errorf("yaku with %d han has no name", y.Han)
		}
		if y.Rule == nil {
			return nil, fmt.Errorf("yaku %q has no rule", y.Name)
		}
		if seen[y.Name] {
			return nil, fmt.Errorf("duplicate yaku %q", y.Name)
		}
		seen[y.Name] = true
	}
	return &Catalogue{yaku: slices.Clone(yaku)}, nil
}

// MustNewCatalogue is like NewCatalogue but panics on error.
func MustNewCatalogue(yaku ...Yaku) *Catalogue {
	c, err := NewCatalogue(yaku...)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of registered yaku.
func (c *Catalogue) Len() int { return len(c.yaku) }

// Yaku returns a copy of the registered yaku in registration order.
func (c *Catalogue) Yaku() []Yaku { return slices.Clone(c.yaku) }

// Names returns the yaku names in registration order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.yaku))
	for i, y := range c.yaku {
		names[i] = y.Name
	}
	return names
}

// Lookup finds a yaku by name.
func (c *Catalogue) Lookup(name string) (Yaku, error) {
	for _, y := range c.yaku {
		if y.Name == name {
			return y, nil
		}
	}
	return Yaku{}, fmt.Errorf("%w: %q", ErrUnknownYaku, name)
}

// Filter returns a catalogue restricted to the named yaku. Registration
// order is kept regardless of the order of names.
func (c *Catalogue) Filter(names ...string) (*Catalogue, error) {
	want := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := c.Lookup(name); err != nil {
			return nil, err
		}
		want[name] = true
	}

	kept := make([]Yaku, 0, len(want))
	for _, y := range c.yaku {
		if want[y.Name] {
			kept = append(kept, y)
		}
	}
	return &Catalogue{yaku: kept}, nil
}
