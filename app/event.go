package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/history"
	"github.com/guyvdb/srplist/record"
)

// Event is an input from the rendering side.
type Event interface {
	event()
}

// FilterAdded is a filter token being created.
type FilterAdded struct {
	Attr  record.Attribute
	Value string
}

// FilterRemoved is a filter token being deleted.
type FilterRemoved struct {
	Attr  record.Attribute
	Value string
}

// ColumnClicked is a click on a column header.
type ColumnClicked struct {
	Attr record.Attribute
}

type PagerAction int

const (
	PagerPrev PagerAction = iota
	PagerNext
	PagerNumber
)

// PagerClicked is a click on a pager control. Number is the one-based page
// label and is only read for PagerNumber.
type PagerClicked struct {
	Action PagerAction
	Number int
}

// StateRestored is the browser moving back or forward to a history entry.
type StateRestored struct {
	State history.State
}

func (FilterAdded) event()   {}
func (FilterRemoved) event() {}
func (ColumnClicked) event() {}
func (PagerClicked) event()  {}
func (StateRestored) event() {}

// Token formats a filter token label, "attribute:value".
func Token(attr record.Attribute, value string) string {
	return attr.String() + ":" + value
}

// ParseToken splits a token label at its first colon; the value may itself
// contain colons.
func ParseToken(label string) (record.Attribute, string, error) {
	name, value, found := strings.Cut(label, ":")
	if !found {
		return 0, "", fmt.Errorf("%w: '%s'", fault.ErrInvalidToken, label)
	}
	attr, err := record.ParseAttribute(name)
	if err != nil {
		return 0, "", err
	}
	return attr, value, nil
}

// ParseCommand reads a one line command into an event:
//
//	add <attr>:<value>
//	remove <attr>:<value>
//	sort <column>
//	page prev|next|<number>
func ParseCommand(line string) (Event, error) {
	verb, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch verb {
	case "add", "remove":
		attr, value, err := ParseToken(arg)
		if err != nil {
			return nil, err
		}
		if verb == "add" {
			return FilterAdded{Attr: attr, Value: value}, nil
		}
		return FilterRemoved{Attr: attr, Value: value}, nil
	case "sort":
		attr, err := record.ParseAttribute(arg)
		if err != nil {
			return nil, err
		}
		return ColumnClicked{Attr: attr}, nil
	case "page":
		switch arg {
		case "prev":
			return PagerClicked{Action: PagerPrev}, nil
		case "next":
			return PagerClicked{Action: PagerNext}, nil
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: page '%s'", fault.ErrUnknownEvent, arg)
		}
		return PagerClicked{Action: PagerNumber, Number: n}, nil
	}
	return nil, fmt.Errorf("%w: '%s'", fault.ErrUnknownEvent, line)
}
