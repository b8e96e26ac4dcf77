package fault

import "errors"

var (
	ErrDuplicateFilter    = errors.New("duplicate filter")
	ErrInvalidFilterValue = errors.New("invalid filter value")
	ErrDuplicateSortName  = errors.New("duplicate sort name")
	ErrUnknownSort        = errors.New("unknown sort")
	ErrSortDomain         = errors.New("value outside explicit sort order")
)
