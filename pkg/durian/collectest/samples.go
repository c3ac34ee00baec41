package collectest

import "github.com/google/uuid"

// Entry is a key/value sample consumed by MapSuite.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// StringSamples returns n map entries with unique keys and values.
func StringSamples(n int) []Entry[string, string] {
	entries := make([]Entry[string, string], n)
	for i := range entries {
		entries[i] = Entry[string, string]{
			Key:   "key-" + uuid.New().String(),
			Value: "value-" + uuid.New().String(),
		}
	}
	return entries
}

// Strings returns n unique sample strings for SetSuite.
func Strings(n int) []string {
	elems := make([]string, n)
	for i := range elems {
		elems[i] = "elem-" + uuid.New().String()
	}
	return elems
}
