package command

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direction of travel along the line
type Direction uint8

const (
	East Direction = iota
	West
)

func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

func (d Direction) MarshalText() ([]byte, error) {
	if d > West {
		return nil, fmt.Errorf("invalid direction %d", uint8(d))
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	v, ok := lookup(directionParser, string(b))
	if !ok {
		return fmt.Errorf("unknown direction %q", b)
	}
	*d = v
	return nil
}

// Category of a spending entry
type Category uint8

const (
	Dining Category = iota
	Grocery
	Travel
	Merchandise
	Entertainment
	Other

	numCategories
)

var categoryNames = [numCategories]string{
	Dining:        "Dining",
	Grocery:       "Grocery",
	Travel:        "Travel",
	Merchandise:   "Merchandise",
	Entertainment: "Entertainment",
	Other:         "Other",
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	if c >= numCategories {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return categoryNames[c]
}

// Alias returns the spelling accepted in chat messages.
func (c Category) Alias() string {
	return strings.ToLower(c.String())
}

func (c Category) MarshalText() ([]byte, error) {
	if c >= numCategories {
		return nil, fmt.Errorf("invalid category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, ok := lookup(categoryParser, string(b))
	if !ok {
		return fmt.Errorf("unknown category %q", b)
	}
	*c = v
	return nil
}

type alias[T any] struct {
	text string
	tag  T
}

// aliasParser builds an ordered alternation over the aliases. Order is
// significant: the first alias that matches wins.
func aliasParser[T any](aliases []alias[T]) Parser[T] {
	options := make([]Parser[T], len(aliases))
	for i, a := range aliases {
		options[i] = Value(Literal(a.text), a.tag)
	}
	return Alt(options...)
}

// stationAliases is sorted longest first so that an alias never shadows a
// longer one sharing its prefix ("memorial" / "memorial hospital").
var stationAliases = func() []alias[Station] {
	var out []alias[Station]
	for s, info := range stationTable {
		for _, a := range info.aliases {
			out = append(out, alias[Station]{a, Station(s)})
		}
	}
	slices.SortStableFunc(out, func(a, b alias[Station]) int {
		return cmp.Compare(len(b.text), len(a.text))
	})
	return out
}()

var directionAliases = []alias[Direction]{
	{"west", West},
	{"east", East},
}

var categoryAliases = func() []alias[Category] {
	out := make([]alias[Category], 0, numCategories)
	for _, c := range Categories() {
		out = append(out, alias[Category]{c.Alias(), c})
	}
	return out
}()

var (
	stationParser   = aliasParser(stationAliases)
	directionParser = aliasParser(directionAliases)
	categoryParser  = aliasParser(categoryAliases)
)

// ParseStation matches a station alias at the head of input.
func ParseStation(input string) (Station, string, bool) { return stationParser(input) }

// ParseDirection matches "west" or "east" at the head of input.
func ParseDirection(input string) (Direction, string, bool) { return directionParser(input) }

// ParseCategory matches a category name at the head of input.
func ParseCategory(input string) (Category, string, bool) { return categoryParser(input) }

// LookupStation resolves a complete alias such as "Memorial Hospital".
func LookupStation(s string) (Station, bool) { return lookup(stationParser, s) }

func lookup[T any](p Parser[T], s string) (T, bool) {
	v, _, ok := Complete(p)(strings.TrimSpace(s))
	return v, ok
}
