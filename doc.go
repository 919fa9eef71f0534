// Package idmanager allocates short string identifiers for UI template
// instances.
//
// A Manager mints ids from a monotonic counter (prefix0, prefix1, ...) and
// recycles released ids before minting new ones. ScopedID builds
// template-global ids of the form prefix_key_suffix_n where n comes from a
// per-key counter, so that several instances of the same template never
// produce the same id:
//
//	m := idmanager.New(idmanager.WithPrefix("w"))
//	a := m.NewID()          // "w0"
//	m.Release(a)
//	b := m.NewID()          // "w0" again
//	c := m.ScopedID("+row") // "w_row__1"
//
// Package registry owns one Manager per template instance and hands out the
// instance prefixes.
package idmanager
