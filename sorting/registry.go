package sorting

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/guyvdb/srplist/fault"
	"github.com/guyvdb/srplist/record"
	"golang.org/x/text/collate"
)

// Records is the read access a Registry needs to validate explicit sorts.
type Records interface {
	Len() int
	At(i int) *record.Record
}

// Registry holds the named sorts available to a view.
type Registry struct {
	sorts map[string]*Sort
	order []string
}

func NewRegistry() *Registry {
	return &Registry{sorts: make(map[string]*Sort)}
}

func (r *Registry) Register(s *Sort) error {
	if _, exists := r.sorts[s.Name]; exists {
		return fmt.Errorf("%w: %s", fault.ErrDuplicateSortName, s.Name)
	}
	r.sorts[s.Name] = s
	r.order = append(r.order, s.Name)
	slog.Debug("sorting.Registry.Register - registered sort", "name", s.Name, "attribute", s.Attr.String())
	return nil
}

// RegisterPair registers base along with its reversed counterpart. Nothing
// is registered if either name is taken.
func (r *Registry) RegisterPair(base *Sort) error {
	rev := Reversed(base)
	for _, name := range []string{base.Name, rev.Name} {
		if _, exists := r.sorts[name]; exists {
			return fmt.Errorf("%w: %s", fault.ErrDuplicateSortName, name)
		}
	}
	if err := r.Register(base); err != nil {
		return err
	}
	return r.Register(rev)
}

func (r *Registry) Get(name string) (*Sort, error) {
	s, found := r.sorts[name]
	if !found {
		return nil, fmt.Errorf("%w: '%s'", fault.ErrUnknownSort, name)
	}
	return s, nil
}

// Names returns the registered sort names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Validate checks that every value an explicit sort will see appears in
// its rank list.
func (r *Registry) Validate(records Records) error {
	for _, name := range r.order {
		s := r.sorts[name]
		if s.Order == nil {
			continue
		}
		for i := 0; i < records.Len(); i++ {
			rec := records.At(i)
			if v := s.Attr.Of(rec).Key(); !slices.Contains(s.Order, v) {
				return fmt.Errorf("%w: sort %s, request %d has %s '%s'", fault.ErrSortDomain, s.Name, rec.Id, s.Attr, v)
			}
		}
	}
	return nil
}

// Defaults builds the registry of request sorts: status by workflow order,
// names alphabetically, timestamps chronologically and numbers numerically,
// each with its reversed pair.
func Defaults(c *collate.Collator) (*Registry, error) {
	bases := []*Sort{Explicit(record.AttrStatus, record.SortStatuses)}
	for _, attr := range []record.Attribute{
		record.AttrAlliance, record.AttrCorporation, record.AttrPilot,
		record.AttrShip, record.AttrDivision, record.AttrSystem,
	} {
		bases = append(bases, Alphabetical(attr, c))
	}
	for _, attr := range []record.Attribute{record.AttrKillTimestamp, record.AttrSubmitTimestamp} {
		bases = append(bases, Temporal(attr))
	}
	for _, attr := range []record.Attribute{record.AttrPayout, record.AttrID} {
		bases = append(bases, Numeric(attr))
	}

	r := NewRegistry()
	for _, base := range bases {
		if err := r.RegisterPair(base); err != nil {
			return nil, err
		}
	}
	return r, nil
}
