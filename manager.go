package idmanager

import (
	"strconv"
	"strings"
)

const (
	// DefaultSeparator joins the components of a scoped id.
	DefaultSeparator = "_"
	// DefaultScopeMarker flags a scope key that should use its own counter.
	DefaultScopeMarker = "+"
)

// Manager hands out string identifiers that are unique among the ids it
// currently has allocated. Released ids are offered back before a new one is
// minted, so the counter only grows when nothing is free.
//
// A Manager is not safe for concurrent use; wrap it with NewSynchronized when
// several goroutines share one instance.
type Manager struct {
	prefix    string
	suffix    string
	separator string
	marker    string
	separated bool
	free      map[string]struct{}
	counter   int
	scoped    map[string]int
	closed    bool
}

// Stats is a point-in-time view of a Manager's internal state.
type Stats struct {
	Minted int  `json:"minted" yaml:"minted"`
	Free   int  `json:"free" yaml:"free"`
	Scopes int  `json:"scopes" yaml:"scopes"`
	Closed bool `json:"closed" yaml:"closed"`
}

// New creates a Manager. Without options ids have no prefix or suffix, scoped
// ids are joined with "_" and "+" marks a counted scope key.
func New(options ...Option) *Manager {
	ret := &Manager{
		separator: DefaultSeparator,
		marker:    DefaultScopeMarker,
		free:      make(map[string]struct{}),
		scoped:    make(map[string]int),
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// Prefix returns the prefix prepended to every id.
func (m *Manager) Prefix() string { return m.prefix }

// Suffix returns the suffix used by scoped ids.
func (m *Manager) Suffix() string { return m.suffix }

// Separator returns the string joining id components.
func (m *Manager) Separator() string { return m.separator }

// NewID returns a released id when one is available, otherwise it mints
// prefix+counter. Which released id comes back is unspecified.
func (m *Manager) NewID() string {
	for id := range m.free {
		delete(m.free, id)
		return id
	}
	return m.mint()
}

// Release makes id available to a later NewID call. Empty ids are ignored and
// releasing the same id twice keeps a single free entry.
func (m *Manager) Release(id string) {
	if id == "" || m.closed {
		return
	}
	m.free[id] = struct{}{}
}

// ScopedID builds a template-global id from a key. A key carrying the scope
// marker gets a trailing number from its own counter (1, 2, ...); a plain key
// gets a blank trailing slot; an empty key takes the trailing number from the
// mint counter.
func (m *Manager) ScopedID(key string) string {
	if key == "" {
		return m.NextScopedID("", false)
	}
	counted := strings.Contains(key, m.marker)
	if counted {
		key = strings.ReplaceAll(key, m.marker, "")
	}
	return m.NextScopedID(key, counted)
}

// NextScopedID is the explicit form of ScopedID: counted selects the per-key
// counter instead of relying on a marker inside key.
func (m *Manager) NextScopedID(key string, counted bool) string {
	if key == "" && !counted {
		return m.join("", strconv.Itoa(m.next()))
	}
	trailing := ""
	if counted {
		next := m.scoped[key] + 1
		m.scoped[key] = next
		trailing = strconv.Itoa(next)
	}
	return m.join(key, trailing)
}

// Close tears the manager down. The free set is dropped and later releases
// are ignored; NewID keeps minting from the counter so issued ids never
// repeat.
func (m *Manager) Close() {
	m.closed = true
	m.free = make(map[string]struct{})
}

// Stats returns a snapshot of the counters.
func (m *Manager) Stats() Stats {
	return Stats{
		Minted: m.counter,
		Free:   len(m.free),
		Scopes: len(m.scoped),
		Closed: m.closed,
	}
}

func (m *Manager) mint() string {
	if m.separated {
		return m.prefix + m.separator + strconv.Itoa(m.next())
	}
	return m.prefix + strconv.Itoa(m.next())
}

func (m *Manager) next() int {
	ret := m.counter
	m.counter++
	return ret
}

func (m *Manager) join(key, trailing string) string {
	return strings.Join([]string{m.prefix, key, m.suffix, trailing}, m.separator)
}
