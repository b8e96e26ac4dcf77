package store

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/record"
)

// IndexDataType specifies how an indexed attribute is encoded. Every
// encoding sorts bytewise in the attribute's natural order.
type IndexDataType int

const (
	StringIndex IndexDataType = iota
	Int64Index
	Float64Index
	StatusIndex
	DateTimeIndex
)

// String returns the string representation of IndexDataType.
func (idt IndexDataType) String() string {
	return [...]string{"String", "Int64", "Float64", "Status", "DateTime"}[idt]
}

type IndexDefinition struct {
	Attr     record.Attribute
	DataType IndexDataType
}

// idSuffixLen is the separator byte plus the encoded request id that end
// every index key.
const idSuffixLen = 1 + 8

// Indexes returns the index definitions for the filterable attributes.
func Indexes() []IndexDefinition {
	defs := make([]IndexDefinition, 0)
	for _, attr := range record.FilterableAttributes() {
		defs = append(defs, IndexDefinition{Attr: attr, DataType: dataTypeOf(attr)})
	}
	return defs
}

func dataTypeOf(attr record.Attribute) IndexDataType {
	switch attr.Kind() {
	case record.KindNumber:
		if attr == record.AttrID {
			return Int64Index
		}
		return Float64Index
	case record.KindStatus:
		return StatusIndex
	case record.KindTimestamp:
		return DateTimeIndex
	}
	return StringIndex
}

func encodeInt64(v int64) []byte {
	// XOR with (1 << 63) to make signed int64 lexicographically sortable
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v)^(1<<63))
	return buf
}

func decodeInt64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

func encodeFloat64(f float64) []byte {
	bits := math.Float64bits(f)
	// Positive values get the sign bit set, negative values are inverted.
	if bits&(1<<63) == 0 {
		bits |= (1 << 63)
	} else {
		bits = ^bits
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, bits)
	return buf
}

func decodeFloat64(b []byte) float64 {
	bits := binary.BigEndian.Uint64(b)
	if bits&(1<<63) != 0 {
		bits &^= (1 << 63)
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits)
}

// encodeTime writes Unix seconds then nanoseconds so every time.Time,
// including the zero value, round trips and sorts bytewise.
func encodeTime(t time.Time) []byte {
	buf := make([]byte, 0, 12)
	buf = append(buf, encodeInt64(t.Unix())...)
	return binary.BigEndian.AppendUint32(buf, uint32(t.Nanosecond()))
}

func decodeTime(b []byte) time.Time {
	return time.Unix(decodeInt64(b[:8]), int64(binary.BigEndian.Uint32(b[8:]))).UTC()
}

func (d IndexDefinition) encode(r *record.Record) []byte {
	v := d.Attr.Of(r)
	switch d.DataType {
	case Int64Index:
		return encodeInt64(int64(v.Num))
	case Float64Index:
		return encodeFloat64(v.Num)
	case StatusIndex:
		return []byte{byte(v.Status)}
	case DateTimeIndex:
		return encodeTime(v.Time)
	}
	return []byte(v.Str)
}

func (d IndexDefinition) decode(b []byte) (record.Value, error) {
	switch d.DataType {
	case StringIndex:
		return record.StringValue(string(b)), nil
	case StatusIndex:
		if len(b) == 1 {
			return record.StatusValue(record.Status(b[0])), nil
		}
	case DateTimeIndex:
		if len(b) == 12 {
			return record.TimeValue(decodeTime(b)), nil
		}
	default:
		if len(b) == 8 {
			switch d.DataType {
			case Int64Index:
				return record.NumberValue(float64(decodeInt64(b))), nil
			case Float64Index:
				return record.NumberValue(decodeFloat64(b)), nil
			}
		}
	}
	return record.Value{}, fmt.Errorf("%w: bad %s index value of %d bytes", fault.ErrUnmarshalFailed, d.DataType, len(b))
}

// indexKey is the encoded value, a null byte and the encoded id, so equal
// values from different requests get distinct keys.
func (d IndexDefinition) indexKey(r *record.Record) []byte {
	value := d.encode(r)
	key := make([]byte, 0, len(value)+idSuffixLen)
	key = append(key, value...)
	key = append(key, 0)
	key = append(key, encodeInt64(r.Id)...)
	return key
}
