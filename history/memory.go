package history

// Entry is one history entry.
type Entry struct {
	State State
	URL   string
}

// MemoryNavigator is an in-process history stack with back and forward
// movement, for hosts that have no browser history.
type MemoryNavigator struct {
	entries []Entry
	pos     int
}

var _ Navigator = (*MemoryNavigator)(nil)

func NewMemoryNavigator(initial Entry) *MemoryNavigator {
	return &MemoryNavigator{entries: []Entry{initial}}
}

// PushState drops any forward entries and appends a new current entry.
func (n *MemoryNavigator) PushState(state State, url string) {
	n.entries = append(n.entries[:n.pos+1], Entry{State: state, URL: url})
	n.pos++
}

// ReplaceState overwrites the current entry.
func (n *MemoryNavigator) ReplaceState(state State, url string) {
	n.entries[n.pos] = Entry{State: state, URL: url}
}

func (n *MemoryNavigator) Current() Entry { return n.entries[n.pos] }

func (n *MemoryNavigator) Len() int { return len(n.entries) }

// Back moves to the previous entry and returns it.
func (n *MemoryNavigator) Back() (Entry, bool) {
	if n.pos == 0 {
		return Entry{}, false
	}
	n.pos--
	return n.entries[n.pos], true
}

// Forward moves to the next entry and returns it.
func (n *MemoryNavigator) Forward() (Entry, bool) {
	if n.pos >= len(n.entries)-1 {
		return Entry{}, false
	}
	n.pos++
	return n.entries[n.pos], true
}
