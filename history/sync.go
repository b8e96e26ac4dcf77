package history

import (
	"log/slog"
)

// Navigator records history entries, typically the browser's history.
type Navigator interface {
	PushState(state State, url string)
	ReplaceState(state State, url string)
}

// Target is the view whose position is mirrored into history.
type Target interface {
	CurrentPage() int
	CurrentSort() string
	CheckPage(n int) error
	CheckSort(name string) error
	SetPage(n int) error
	SetSort(name string) error
}

// Sync keeps a Target and a Navigator in step. Push records the target's
// position after a user action; Restore replays a position from history
// without recording anything.
type Sync struct {
	target Target
	nav    Navigator
	path   string
}

// NewSync binds target to nav. path is the current location path.
func NewSync(target Target, nav Navigator, path string) *Sync {
	return &Sync{target: target, nav: nav, path: path}
}

// Path is the location path of the current history entry.
func (s *Sync) Path() string { return s.path }

// State returns the target's current position.
func (s *Sync) State() State {
	return State{Page: s.target.CurrentPage(), Sort: s.target.CurrentSort()}
}

// Push records the target's current position as a new history entry.
func (s *Sync) Push() {
	state := s.State()
	s.path = PagePath(s.path, state.Page)
	slog.Debug("history.Sync.Push - push state", "page", state.Page, "sort", state.Sort, "path", s.path)
	s.nav.PushState(state, s.path)
}

// Replace overwrites the current history entry with the target's position,
// for changes that move the target without being a navigation step.
func (s *Sync) Replace() {
	state := s.State()
	s.path = PagePath(s.path, state.Page)
	slog.Debug("history.Sync.Replace - replace state", "page", state.Page, "sort", state.Sort, "path", s.path)
	s.nav.ReplaceState(state, s.path)
}

// Restore applies a state read back from history. Both fields are checked
// before either is applied, and only fields that differ from the target are
// set.
func (s *Sync) Restore(state State) error {
	if err := s.target.CheckSort(state.Sort); err != nil {
		return err
	}
	if err := s.target.CheckPage(state.Page); err != nil {
		return err
	}

	slog.Debug("history.Sync.Restore - restore state", "page", state.Page, "sort", state.Sort)
	if state.Page != s.target.CurrentPage() {
		if err := s.target.SetPage(state.Page); err != nil {
			return err
		}
	}
	if state.Sort != s.target.CurrentSort() {
		if err := s.target.SetSort(state.Sort); err != nil {
			return err
		}
	}
	s.path = PagePath(s.path, state.Page)
	return nil
}
