package record

import (
	"fmt"
	"strconv"
	"time"

	"github.com/guyvdb/srplist/fault"
)

// Attribute names a request column. Lookups go through a fixed accessor
// table rather than string keyed field access.
type Attribute int

const (
	AttrID Attribute = iota
	AttrHref
	AttrStatus
	AttrAlliance
	AttrCorporation
	AttrPilot
	AttrShip
	AttrDivision
	AttrSystem
	AttrKillTimestamp
	AttrSubmitTimestamp
	AttrPayout
)

// Kind is the value type of an attribute.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindStatus
	KindTimestamp
)

func (k Kind) String() string {
	return [...]string{"String", "Number", "Status", "Timestamp"}[k]
}

type attributeInfo struct {
	name string
	kind Kind
	get  func(r *Record) Value
}

var attributes = [...]attributeInfo{
	AttrID:              {"id", KindNumber, func(r *Record) Value { return NumberValue(float64(r.Id)) }},
	AttrHref:            {"href", KindString, func(r *Record) Value { return StringValue(r.Href) }},
	AttrStatus:          {"status", KindStatus, func(r *Record) Value { return StatusValue(r.Status) }},
	AttrAlliance:        {"alliance", KindString, func(r *Record) Value { return StringValue(r.Alliance) }},
	AttrCorporation:     {"corporation", KindString, func(r *Record) Value { return StringValue(r.Corporation) }},
	AttrPilot:           {"pilot", KindString, func(r *Record) Value { return StringValue(r.Pilot) }},
	AttrShip:            {"ship", KindString, func(r *Record) Value { return StringValue(r.Ship) }},
	AttrDivision:        {"division", KindString, func(r *Record) Value { return StringValue(r.Division) }},
	AttrSystem:          {"system", KindString, func(r *Record) Value { return StringValue(r.System) }},
	AttrKillTimestamp:   {"kill_timestamp", KindTimestamp, func(r *Record) Value { return TimeValue(r.KillTimestamp) }},
	AttrSubmitTimestamp: {"submit_timestamp", KindTimestamp, func(r *Record) Value { return TimeValue(r.SubmitTimestamp) }},
	AttrPayout:          {"payout", KindNumber, func(r *Record) Value { return NumberValue(r.Payout) }},
}

// Attributes returns every attribute in column order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	for i := range attributes {
		out[i] = Attribute(i)
	}
	return out
}

// FilterableAttributes returns the attributes that get a facet filter.
// Ids, links, payouts and submission times are never filtered on.
func FilterableAttributes() []Attribute {
	return []Attribute{
		AttrStatus, AttrAlliance, AttrCorporation, AttrPilot,
		AttrShip, AttrDivision, AttrSystem, AttrKillTimestamp,
	}
}

// ParseAttribute looks an attribute up by its column name.
func ParseAttribute(name string) (Attribute, error) {
	for i, info := range attributes {
		if info.name == name {
			return Attribute(i), nil
		}
	}
	return 0, fmt.Errorf("%w: '%s'", fault.ErrUnknownAttribute, name)
}

func (a Attribute) Valid() bool {
	return a >= 0 && int(a) < len(attributes)
}

func (a Attribute) String() string {
	if !a.Valid() {
		return "attribute(" + strconv.Itoa(int(a)) + ")"
	}
	return attributes[a].name
}

func (a Attribute) Kind() Kind {
	return attributes[a].kind
}

// Of reads the attribute from r.
func (a Attribute) Of(r *Record) Value {
	return attributes[a].get(r)
}

// Value is a typed attribute value. Only the field matching Kind is set.
type Value struct {
	Kind   Kind
	Str    string
	Num    float64
	Time   time.Time
	Status Status
}

func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func StatusValue(s Status) Value  { return Value{Kind: KindStatus, Status: s} }
func TimeValue(t time.Time) Value { return Value{Kind: KindTimestamp, Time: t} }

// Key is the canonical string form used for filter membership and as the
// token value shown to users.
func (v Value) Key() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindStatus:
		return v.Status.String()
	case KindTimestamp:
		return v.Time.UTC().Format(time.RFC3339)
	default:
		return v.Str
	}
}

// Compare orders two values of the same kind by their natural order:
// bytewise for strings, numeric for numbers, chronological for timestamps
// and enum order for statuses.
func (v Value) Compare(o Value) int {
	switch v.Kind {
	case KindNumber:
		return sign(v.Num - o.Num)
	case KindStatus:
		return int(v.Status) - int(o.Status)
	case KindTimestamp:
		return v.Time.Compare(o.Time)
	default:
		switch {
		case v.Str < o.Str:
			return -1
		case v.Str > o.Str:
			return 1
		}
		return 0
	}
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	}
	return 0
}
