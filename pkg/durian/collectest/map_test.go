package collectest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// hashMap adapts a builtin map to the Map contract.
type hashMap[K comparable, V any] struct {
	entries map[K]V
}

func newHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{entries: make(map[K]V)}
}

func (h *hashMap[K, V]) Len() int { return len(h.entries) }

func (h *hashMap[K, V]) Get(key K) (V, bool) {
	value, ok := h.entries[key]
	return value, ok
}

func (h *hashMap[K, V]) Put(key K, value V) { h.entries[key] = value }

func (h *hashMap[K, V]) Delete(key K) { delete(h.entries, key) }

func TestMapSuiteAgainstBuiltinMap(t *testing.T) {
	suite := NewMapSuite(newHashMap[string, string], StringSamples(4))
	suite.Run(t)
}

func TestMapSuiteWithIntKeys(t *testing.T) {
	samples := []Entry[int, string]{
		{Key: 1, Value: "one"},
		{Key: 2, Value: "two"},
		{Key: 3, Value: "three"},
	}
	suite := NewMapSuite(newHashMap[int, string], samples)
	suite.Run(t)
}

func TestNewMapSuiteValidation(t *testing.T) {
	t.Run("nil factory", func(t *testing.T) {
		assert.PanicsWithValue(t, "collectest: map factory must not be nil", func() {
			NewMapSuite[string, string](nil, StringSamples(2))
		})
	})

	t.Run("too few samples", func(t *testing.T) {
		assert.PanicsWithValue(t, "collectest: need at least two sample entries", func() {
			NewMapSuite(newHashMap[string, string], StringSamples(1))
		})
	})

	t.Run("duplicate keys", func(t *testing.T) {
		samples := []Entry[string, string]{
			{Key: "dup", Value: "first"},
			{Key: "dup", Value: "second"},
		}
		assert.PanicsWithValue(t, "collectest: sample keys must be distinct", func() {
			NewMapSuite(newHashMap[string, string], samples)
		})
	})
}
