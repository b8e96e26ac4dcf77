package fault

import "errors"

var (
	ErrPageOutOfRange  = errors.New("page out of range")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidState    = errors.New("invalid history state")
	ErrUnknownEvent    = errors.New("unknown event")
	ErrInvalidToken    = errors.New("invalid filter token")
)
