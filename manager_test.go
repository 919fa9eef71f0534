package idmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_NewID(t *testing.T) {
	m := New(WithPrefix("w"))
	assert.Equal(t, "w0", m.NewID())
	assert.Equal(t, "w1", m.NewID())
	m.Release("w0")
	assert.Equal(t, "w0", m.NewID())
	assert.Equal(t, "w2", m.NewID())
}

func TestManager_NewIDDistinct(t *testing.T) {
	m := New()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := m.NewID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, 1000, m.Stats().Minted)
}

func TestManager_Release(t *testing.T) {
	t.Run("empty id is ignored", func(t *testing.T) {
		m := New()
		m.Release("")
		assert.Equal(t, 0, m.Stats().Free)
		assert.Equal(t, "0", m.NewID())
	})

	t.Run("idempotent", func(t *testing.T) {
		m := New(WithPrefix("a"))
		id := m.NewID()
		m.Release(id)
		m.Release(id)
		assert.Equal(t, 1, m.Stats().Free)
		assert.Equal(t, id, m.NewID())
		assert.Equal(t, "a1", m.NewID())
	})

	t.Run("foreign id is accepted", func(t *testing.T) {
		m := New(WithPrefix("a"))
		m.Release("external")
		assert.Equal(t, "external", m.NewID())
	})

	t.Run("reuse does not rewind counter", func(t *testing.T) {
		m := New()
		var ids []string
		for i := 0; i < 5; i++ {
			ids = append(ids, m.NewID())
		}
		for _, id := range ids {
			m.Release(id)
		}
		reused := map[string]bool{}
		for range ids {
			reused[m.NewID()] = true
		}
		assert.Len(t, reused, 5)
		for _, id := range ids {
			assert.True(t, reused[id])
		}
		assert.Equal(t, 5, m.Stats().Minted)
		assert.Equal(t, "5", m.NewID())
	})
}

func TestManager_ScopedID(t *testing.T) {
	var testCases = []struct {
		description string
		options     []Option
		keys        []string
		expect      []string
	}{
		{
			description: "counted key",
			keys:        []string{"+panel", "+panel"},
			expect:      []string{"_panel__1", "_panel__2"},
		},
		{
			description: "counted keys are independent",
			options:     []Option{WithPrefix("t0"), WithSuffix("s")},
			keys:        []string{"+a", "+b", "a+", "+b"},
			expect:      []string{"t0_a_s_1", "t0_b_s_1", "t0_a_s_2", "t0_b_s_2"},
		},
		{
			description: "plain key has blank trailing slot",
			options:     []Option{WithPrefix("t0"), WithSuffix("s")},
			keys:        []string{"foo", "foo"},
			expect:      []string{"t0_foo_s_", "t0_foo_s_"},
		},
		{
			description: "empty key uses mint counter",
			options:     []Option{WithPrefix("p"), WithSuffix("s")},
			keys:        []string{"", ""},
			expect:      []string{"p__s_0", "p__s_1"},
		},
		{
			description: "bare marker counts the empty key",
			keys:        []string{"+", "+"},
			expect:      []string{"___1", "___2"},
		},
		{
			description: "every marker is stripped before the counter lookup",
			keys:        []string{"++a", "+a", "a++"},
			expect:      []string{"_a__1", "_a__2", "_a__3"},
		},
		{
			description: "empty separator keeps the default",
			options:     []Option{WithPrefix("p"), WithSeparator("")},
			keys:        []string{"+row"},
			expect:      []string{"p_row__1"},
		},
		{
			description: "custom separator and marker",
			options:     []Option{WithPrefix("p"), WithSeparator("-"), WithScopeMarker("*")},
			keys:        []string{"*row", "row+", "*row"},
			expect:      []string{"p-row--1", "p-row+--", "p-row--2"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			m := New(testCase.options...)
			var actual []string
			for _, key := range testCase.keys {
				actual = append(actual, m.ScopedID(key))
			}
			assert.Equal(t, testCase.expect, actual)
		})
	}
}

func TestManager_ScopedIDCounters(t *testing.T) {
	m := New(WithPrefix("w"))
	assert.Equal(t, "w_foo__", m.ScopedID("foo"))
	assert.Equal(t, 0, m.Stats().Scopes)

	assert.Equal(t, "w___0", m.ScopedID(""))
	assert.Equal(t, 0, m.Stats().Scopes)
	// the empty key shares the mint counter with NewID
	assert.Equal(t, "w1", m.NewID())
	assert.Equal(t, "w___2", m.ScopedID(""))

	m.ScopedID("+foo")
	assert.Equal(t, 1, m.Stats().Scopes)
	assert.Equal(t, 3, m.Stats().Minted)
}

func TestManager_NextScopedID(t *testing.T) {
	m := New(WithPrefix("w"), WithSuffix("x"))
	assert.Equal(t, "w_list_x_1", m.NextScopedID("list", true))
	assert.Equal(t, "w_list_x_2", m.ScopedID("+list"))
	assert.Equal(t, "w_list_x_", m.NextScopedID("list", false))
	assert.Equal(t, "w__x_0", m.NextScopedID("", false))
	assert.Equal(t, "w__x_1", m.NextScopedID("", true))
}

func TestManager_SeparatedIDs(t *testing.T) {
	m := New(WithPrefix("panel1"), WithSeparatedIDs())
	assert.Equal(t, "panel1_0", m.NewID())
	assert.Equal(t, "panel1_row__1", m.ScopedID("+row"))
	assert.Equal(t, "panel1___1", m.ScopedID(""))

	m = New(WithPrefix("p"), WithSeparator("-"), WithSeparatedIDs())
	assert.Equal(t, "p-0", m.NewID())
	assert.Equal(t, "-", m.Separator())
}

func TestManager_Close(t *testing.T) {
	m := New(WithPrefix("w"))
	a := m.NewID()
	m.NewID()
	m.Release(a)
	m.Close()

	stats := m.Stats()
	assert.True(t, stats.Closed)
	assert.Equal(t, 0, stats.Free)

	m.Release("w1")
	assert.Equal(t, 0, m.Stats().Free)
	assert.Equal(t, "w2", m.NewID())
}
