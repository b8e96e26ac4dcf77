package record

import (
	"fmt"
	"strings"

	"github.com/guyvdb/srplist/fault"
)

// Status is the lifecycle state of a request.
type Status int

const (
	StatusUnknown Status = iota
	StatusEvaluating
	StatusIncomplete
	StatusApproved
	StatusRejected
	StatusPaid
)

var statusNames = [...]string{"unknown", "evaluating", "incomplete", "approved", "rejected", "paid"}

// FilterStatuses is the literal domain offered by the status facet.
var FilterStatuses = []string{"evaluating", "approved", "rejected", "incomplete", "paid"}

// SortStatuses is the rank order used by the status sort.
var SortStatuses = []string{"evaluating", "incomplete", "approved", "rejected", "paid"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[StatusUnknown]
	}
	return statusNames[s]
}

// ParseStatus maps a lower-case status name to its Status.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if i != int(StatusUnknown) && n == strings.ToLower(name) {
			return Status(i), nil
		}
	}
	return StatusUnknown, fmt.Errorf("%w: unknown status '%s'", fault.ErrInvalidRecord, name)
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(data []byte) error {
	parsed, err := ParseStatus(string(data))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
