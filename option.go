package idmanager

// Option configures a Manager
type Option func(m *Manager)

// WithPrefix sets the prefix prepended to every id
func WithPrefix(prefix string) Option {
	return func(m *Manager) {
		m.prefix = prefix
	}
}

// WithSuffix sets the suffix component of scoped ids
func WithSuffix(suffix string) Option {
	return func(m *Manager) {
		m.suffix = suffix
	}
}

// WithSeparator sets the string joining the components of a scoped id.
// An empty separator is ignored.
func WithSeparator(separator string) Option {
	return func(m *Manager) {
		if separator != "" {
			m.separator = separator
		}
	}
}

// WithSeparatedIDs places the separator between prefix and counter in minted
// ids (p_0, p_1, ...). Managers whose prefixes end in digits need it to keep
// ids of prefix p1 apart from those of prefix p11.
func WithSeparatedIDs() Option {
	return func(m *Manager) {
		m.separated = true
	}
}

// WithScopeMarker sets the marker that turns a scope key into a counted key.
// An empty marker is ignored.
func WithScopeMarker(marker string) Option {
	return func(m *Manager) {
		if marker != "" {
			m.marker = marker
		}
	}
}
