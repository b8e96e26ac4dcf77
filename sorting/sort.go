package sorting

import (
	"fmt"
	"strings"

	"github.com/guyvdb/srplist/record"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator is a three-way comparison: negative when a sorts before b,
// positive when after, zero when equal.
type Comparator func(a, b *record.Record) int

// Sort is a named ordering over records. A reversed sort keeps a
// reference to the sort it negates in Base.
type Sort struct {
	Name    string
	Attr    record.Attribute
	Compare Comparator
	Base    *Sort

	// Order is the rank list of an explicit sort.
	Order []string
}

// Explicit ranks records by the position of attr in order.
func Explicit(attr record.Attribute, order []string) *Sort {
	rank := make(map[string]int, len(order))
	for i, v := range order {
		if _, dup := rank[v]; !dup {
			rank[v] = i
		}
	}
	rankOf := func(r *record.Record) int {
		if i, ok := rank[attr.Of(r).Key()]; ok {
			return i
		}
		// Registry.Validate rejects stores holding such values.
		return len(order)
	}
	return &Sort{
		Name:  Name(attr, Ascending),
		Attr:  attr,
		Order: order,
		Compare: func(a, b *record.Record) int {
			return rankOf(a) - rankOf(b)
		},
	}
}

// Alphabetical orders by attr using locale aware collation.
func Alphabetical(attr record.Attribute, c *collate.Collator) *Sort {
	return &Sort{
		Name: Name(attr, Ascending),
		Attr: attr,
		Compare: func(a, b *record.Record) int {
			return c.CompareString(attr.Of(a).Key(), attr.Of(b).Key())
		},
	}
}

// Temporal orders by the instant held in attr.
func Temporal(attr record.Attribute) *Sort {
	return &Sort{
		Name: Name(attr, Ascending),
		Attr: attr,
		Compare: func(a, b *record.Record) int {
			return attr.Of(a).Time.Compare(attr.Of(b).Time)
		},
	}
}

// Numeric orders by the number held in attr.
func Numeric(attr record.Attribute) *Sort {
	return &Sort{
		Name: Name(attr, Ascending),
		Attr: attr,
		Compare: func(a, b *record.Record) int {
			x, y := attr.Of(a).Num, attr.Of(b).Num
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		},
	}
}

// Reversed negates base. The result is named for the opposite direction
// of base on the same attribute.
func Reversed(base *Sort) *Sort {
	_, dir, _ := SplitName(base.Name)
	return &Sort{
		Name: Name(base.Attr, dir.Opposite()),
		Attr: base.Attr,
		Base: base,
		Compare: func(a, b *record.Record) int {
			return -1 * base.Compare(a, b)
		},
	}
}

// NewCollator builds the collator used by alphabetical sorts.
func NewCollator(locale string) (*collate.Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale '%s': %w", locale, err)
	}
	return collate.New(tag), nil
}

// Direction is encoded in the last segment of a sort name.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

const (
	ascSuffix = "asc"
	dscSuffix = "dsc"
)

func (d Direction) String() string {
	if d == Descending {
		return dscSuffix
	}
	return ascSuffix
}

func (d Direction) Opposite() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// Name builds the sort name for attr in direction dir, e.g. "pilot_asc".
func Name(attr record.Attribute, dir Direction) string {
	return attr.String() + "_" + dir.String()
}

// SplitName splits a sort name into its attribute stem and direction.
func SplitName(name string) (string, Direction, bool) {
	i := strings.LastIndex(name, "_")
	if i <= 0 {
		return "", Ascending, false
	}
	stem, suffix := name[:i], name[i+1:]
	switch suffix {
	case ascSuffix:
		return stem, Ascending, true
	case dscSuffix:
		return stem, Descending, true
	}
	return "", Ascending, false
}

// Toggle returns the sort to select when the header for column is clicked
// while current is active. Clicking the active column flips direction; any
// other column starts ascending. An empty current means unsorted.
func Toggle(current string, column record.Attribute) string {
	if stem, dir, ok := SplitName(current); ok && stem == column.String() {
		return Name(column, dir.Opposite())
	}
	return Name(column, Ascending)
}
