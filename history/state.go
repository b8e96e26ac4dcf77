package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/guyvdb/srplist/fault"
)

// State is the view position carried by a history entry. An empty Sort
// means unsorted and is written as false.
type State struct {
	Page int
	Sort string
}

type wireState struct {
	Page int             `json:"page"`
	Sort json.RawMessage `json:"sort"`
}

var falseLiteral = []byte("false")

func (s State) MarshalJSON() ([]byte, error) {
	sort := json.RawMessage(falseLiteral)
	if s.Sort != "" {
		b, err := json.Marshal(s.Sort)
		if err != nil {
			return nil, err
		}
		sort = b
	}
	return json.Marshal(wireState{Page: s.Page, Sort: sort})
}

// UnmarshalJSON accepts a sort name, false, null or a missing sort as
// unsorted. Anything else is an invalid state.
func (s *State) UnmarshalJSON(data []byte) error {
	var w wireState
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %w", fault.ErrInvalidState, err)
	}
	s.Page = w.Page
	s.Sort = ""

	raw := bytes.TrimSpace(w.Sort)
	if len(raw) == 0 || bytes.Equal(raw, falseLiteral) || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, &s.Sort); err != nil {
		return fmt.Errorf("%w: sort must be a name or false, got %s", fault.ErrInvalidState, raw)
	}
	return nil
}

var pageSuffix = regexp.MustCompile(`/?(?:\d+/?)?$`)

// PagePath replaces any trailing page number in path with the one-based
// number of page, e.g. "/requests/3/" for page 2 of "/requests/".
func PagePath(path string, page int) string {
	return pageSuffix.ReplaceAllString(path, "") + "/" + strconv.Itoa(page+1) + "/"
}
