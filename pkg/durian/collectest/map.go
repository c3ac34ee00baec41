package collectest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Map is the minimal mutable-map contract a MapSuite exercises.
type Map[K comparable, V any] interface {
	// Len returns the number of stored entries.
	Len() int

	// Get returns the value stored under key and whether it was present.
	Get(key K) (V, bool)

	// Put stores value under key, replacing any existing entry.
	Put(key K, value V)

	// Delete removes the entry stored under key, if any.
	Delete(key K)
}

// MapSuite runs mutable-map conformance checks against maps produced by a
// factory. Build one with NewMapSuite and execute it with Run.
type MapSuite[K comparable, V any] struct {
	factory func() Map[K, V]
	samples []Entry[K, V]
}

// NewMapSuite creates a conformance suite for the maps produced by factory.
// Each factory call must return a fresh, empty map. The samples seed the
// checks and need at least two entries with distinct keys.
func NewMapSuite[K comparable, V any](factory func() Map[K, V], samples []Entry[K, V]) *MapSuite[K, V] {
	if factory == nil {
		panic("collectest: map factory must not be nil")
	}
	if len(samples) < 2 {
		panic("collectest: need at least two sample entries")
	}
	seen := make(map[K]struct{}, len(samples))
	for _, entry := range samples {
		if _, dup := seen[entry.Key]; dup {
			panic("collectest: sample keys must be distinct")
		}
		seen[entry.Key] = struct{}{}
	}
	return &MapSuite[K, V]{factory: factory, samples: samples}
}

// Run executes every conformance check as a subtest of t.
func (s *MapSuite[K, V]) Run(t *testing.T) {
	t.Helper()

	t.Run("starts empty", func(t *testing.T) {
		m := s.factory()
		require.NotNil(t, m, "factory returned nil map")

		assert.Equal(t, 0, m.Len())
		_, ok := m.Get(s.samples[0].Key)
		assert.False(t, ok, "empty map reported a stored key")
	})

	t.Run("put then get", func(t *testing.T) {
		m := s.factory()
		first := s.samples[0]

		m.Put(first.Key, first.Value)

		got, ok := m.Get(first.Key)
		require.True(t, ok, "stored key not found")
		assert.Equal(t, first.Value, got)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("get missing key", func(t *testing.T) {
		m := s.factory()
		m.Put(s.samples[0].Key, s.samples[0].Value)

		var zero V
		got, ok := m.Get(s.samples[1].Key)
		assert.False(t, ok, "missing key reported as present")
		assert.Equal(t, zero, got, "missing key returned a non-zero value")
	})

	t.Run("put overwrites existing key", func(t *testing.T) {
		m := s.factory()
		first, second := s.samples[0], s.samples[1]

		m.Put(first.Key, first.Value)
		m.Put(first.Key, second.Value)

		got, ok := m.Get(first.Key)
		require.True(t, ok)
		assert.Equal(t, second.Value, got)
		assert.Equal(t, 1, m.Len(), "overwrite changed the entry count")
	})

	t.Run("delete removes key", func(t *testing.T) {
		m := s.factory()
		for _, entry := range s.samples {
			m.Put(entry.Key, entry.Value)
		}

		m.Delete(s.samples[0].Key)

		_, ok := m.Get(s.samples[0].Key)
		assert.False(t, ok, "deleted key still present")
		assert.Equal(t, len(s.samples)-1, m.Len())
	})

	t.Run("delete missing key is a no-op", func(t *testing.T) {
		m := s.factory()

		assert.NotPanics(t, func() {
			m.Delete(s.samples[0].Key)
		})
		assert.Equal(t, 0, m.Len())
	})

	t.Run("size tracks contents", func(t *testing.T) {
		m := s.factory()

		for i, entry := range s.samples {
			m.Put(entry.Key, entry.Value)
			assert.Equal(t, i+1, m.Len())
		}
		for i, entry := range s.samples {
			m.Delete(entry.Key)
			assert.Equal(t, len(s.samples)-i-1, m.Len())
		}
	})

	t.Run("fresh instances are independent", func(t *testing.T) {
		first := s.factory()
		second := s.factory()
		require.NotSame(t, first, second, "factory returned the same instance twice")

		first.Put(s.samples[0].Key, s.samples[0].Value)

		assert.Equal(t, 0, second.Len(), "mutation of one instance leaked into another")
	})
}
