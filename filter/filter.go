package filter

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/record"
)

// Filter is an exact-match facet over one attribute. A record matches when
// its value is one of the active values, or when no value is active.
type Filter struct {
	attr   record.Attribute
	domain []string
	legal  map[string]bool
	active []string
}

func newFilter(attr record.Attribute, domain []string) *Filter {
	f := &Filter{
		attr:   attr,
		domain: make([]string, 0, len(domain)),
		legal:  make(map[string]bool, len(domain)),
	}
	for _, v := range domain {
		if !f.legal[v] {
			f.legal[v] = true
			f.domain = append(f.domain, v)
		}
	}
	return f
}

func (f *Filter) Attribute() record.Attribute { return f.attr }

// Domain returns the legal values in registration order.
func (f *Filter) Domain() []string { return slices.Clone(f.domain) }

// Active returns the active values in the order they were added.
func (f *Filter) Active() []string { return slices.Clone(f.active) }

func (f *Filter) IsActive(value string) bool {
	return slices.Contains(f.active, value)
}

func (f *Filter) Matches(r *record.Record) bool {
	if len(f.active) == 0 {
		return true
	}
	return f.IsActive(f.attr.Of(r).Key())
}

// Set is the collection of registered filters. Filters are ANDed together;
// the active values within one filter are ORed.
type Set struct {
	filters   map[record.Attribute]*Filter
	order     []record.Attribute
	listeners []func()
}

func NewSet() *Set {
	return &Set{filters: make(map[record.Attribute]*Filter)}
}

// Register installs a filter for attr whose legal values are domain.
func (s *Set) Register(attr record.Attribute, domain []string) error {
	if !attr.Valid() {
		return fmt.Errorf("%w: %s", fault.ErrUnknownAttribute, attr)
	}
	if _, exists := s.filters[attr]; exists {
		return fmt.Errorf("%w: %s", fault.ErrDuplicateFilter, attr)
	}
	s.filters[attr] = newFilter(attr, domain)
	s.order = append(s.order, attr)
	slog.Debug("filter.Set.Register - registered filter", "attribute", attr.String(), "values", len(domain))
	return nil
}

// OnChange registers fn to run after any active-value set changes.
func (s *Set) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Set) lookup(attr record.Attribute) (*Filter, error) {
	f, found := s.filters[attr]
	if !found {
		return nil, fmt.Errorf("%w: no filter for %s", fault.ErrUnknownAttribute, attr)
	}
	return f, nil
}

// Add activates value on the filter for attr. Adding an active value is a
// no-op and does not notify.
func (s *Set) Add(attr record.Attribute, value string) error {
	f, err := s.lookup(attr)
	if err != nil {
		return err
	}
	if !f.legal[value] {
		return fmt.Errorf("%w: '%s' for %s", fault.ErrInvalidFilterValue, value, attr)
	}
	if f.IsActive(value) {
		return nil
	}
	f.active = append(f.active, value)
	slog.Debug("filter.Set.Add - value added", "attribute", attr.String(), "value", value)
	s.changed()
	return nil
}

// Remove deactivates value. Removing an inactive value is a no-op.
func (s *Set) Remove(attr record.Attribute, value string) error {
	f, err := s.lookup(attr)
	if err != nil {
		return err
	}
	i := slices.Index(f.active, value)
	if i < 0 {
		return nil
	}
	f.active = slices.Delete(f.active, i, i+1)
	slog.Debug("filter.Set.Remove - value removed", "attribute", attr.String(), "value", value)
	s.changed()
	return nil
}

// Clear deactivates every value of the filter for attr.
func (s *Set) Clear(attr record.Attribute) error {
	f, err := s.lookup(attr)
	if err != nil {
		return err
	}
	if len(f.active) == 0 {
		return nil
	}
	f.active = nil
	s.changed()
	return nil
}

func (s *Set) Matches(r *record.Record) bool {
	for _, attr := range s.order {
		if !s.filters[attr].Matches(r) {
			return false
		}
	}
	return true
}

// Filter returns the filter registered for attr.
func (s *Set) Filter(attr record.Attribute) (*Filter, error) {
	return s.lookup(attr)
}

// Attributes returns the filtered attributes in registration order.
func (s *Set) Attributes() []record.Attribute {
	return slices.Clone(s.order)
}

// Active returns the active values of every filter that has any.
func (s *Set) Active() map[record.Attribute][]string {
	out := make(map[record.Attribute][]string)
	for _, attr := range s.order {
		if f := s.filters[attr]; len(f.active) > 0 {
			out[attr] = f.Active()
		}
	}
	return out
}

func (s *Set) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}
