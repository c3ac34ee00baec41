package collectest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set is the minimal set contract a SetSuite exercises.
type Set[E comparable] interface {
	// Len returns the number of stored elements.
	Len() int

	// Has reports whether elem is a member.
	Has(elem E) bool

	// Add makes elem a member. Adding an existing member has no effect.
	Add(elem E)

	// Remove drops elem from the set, if present.
	Remove(elem E)
}

// SetSuite runs set conformance checks against sets produced by a factory.
// Build one with NewSetSuite and execute it with Run.
type SetSuite[E comparable] struct {
	factory func() Set[E]
	samples []E
}

// NewSetSuite creates a conformance suite for the sets produced by factory.
// Each factory call must return a fresh, empty set. The samples seed the
// checks and need at least two distinct elements.
func NewSetSuite[E comparable](factory func() Set[E], samples []E) *SetSuite[E] {
	if factory == nil {
		panic("collectest: set factory must not be nil")
	}
	if len(samples) < 2 {
		panic("collectest: need at least two sample elements")
	}
	seen := make(map[E]struct{}, len(samples))
	for _, elem := range samples {
		if _, dup := seen[elem]; dup {
			panic("collectest: sample elements must be distinct")
		}
		seen[elem] = struct{}{}
	}
	return &SetSuite[E]{factory: factory, samples: samples}
}

// Run executes every conformance check as a subtest of t.
func (s *SetSuite[E]) Run(t *testing.T) {
	t.Helper()

	t.Run("starts empty", func(t *testing.T) {
		set := s.factory()
		require.NotNil(t, set, "factory returned nil set")

		assert.Equal(t, 0, set.Len())
		assert.False(t, set.Has(s.samples[0]), "empty set reported a member")
	})

	t.Run("add establishes membership", func(t *testing.T) {
		set := s.factory()

		set.Add(s.samples[0])

		assert.True(t, set.Has(s.samples[0]))
		assert.False(t, set.Has(s.samples[1]), "unrelated element reported as member")
		assert.Equal(t, 1, set.Len())
	})

	t.Run("duplicate add is idempotent", func(t *testing.T) {
		set := s.factory()

		set.Add(s.samples[0])
		set.Add(s.samples[0])

		assert.True(t, set.Has(s.samples[0]))
		assert.Equal(t, 1, set.Len(), "duplicate add changed the element count")
	})

	t.Run("remove drops membership", func(t *testing.T) {
		set := s.factory()
		set.Add(s.samples[0])
		set.Add(s.samples[1])

		set.Remove(s.samples[0])

		assert.False(t, set.Has(s.samples[0]), "removed element still a member")
		assert.True(t, set.Has(s.samples[1]), "removal dropped an unrelated element")
		assert.Equal(t, 1, set.Len())
	})

	t.Run("remove missing element is a no-op", func(t *testing.T) {
		set := s.factory()

		assert.NotPanics(t, func() {
			set.Remove(s.samples[0])
		})
		assert.Equal(t, 0, set.Len())
	})

	t.Run("size tracks contents", func(t *testing.T) {
		set := s.factory()

		for i, elem := range s.samples {
			set.Add(elem)
			assert.Equal(t, i+1, set.Len())
		}
		for i, elem := range s.samples {
			set.Remove(elem)
			assert.Equal(t, len(s.samples)-i-1, set.Len())
		}
	})

	t.Run("fresh instances are independent", func(t *testing.T) {
		first := s.factory()
		second := s.factory()
		require.NotSame(t, first, second, "factory returned the same instance twice")

		first.Add(s.samples[0])

		assert.Equal(t, 0, second.Len(), "mutation of one instance leaked into another")
	})
}
