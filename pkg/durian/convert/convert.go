// Package convert provides a bidirectional converter: a pair of functions
// between two types that can be applied forwards, reversed, and composed.
package convert

import "fmt"

// Converter transforms A to B and back. The two directions are expected to
// be inverses for values in range, so that Reverse().Convert(Convert(a))
// round-trips. Converters are built once and shared; all methods are safe
// for concurrent use.
type Converter[A, B any] struct {
	name     string
	forward  func(A) B
	backward func(B) A
	reverse  *Converter[B, A]
}

// New creates a converter from a forward and backward function. The name
// appears in String for diagnostics.
func New[A, B any](name string, forward func(A) B, backward func(B) A) *Converter[A, B] {
	c := &Converter[A, B]{
		name:     name,
		forward:  forward,
		backward: backward,
	}
	c.reverse = &Converter[B, A]{
		name:     name + ".Reverse()",
		forward:  backward,
		backward: forward,
		reverse:  c,
	}
	return c
}

// Identity returns a converter that passes values through unchanged. Its
// reverse is itself.
func Identity[T any]() *Converter[T, T] {
	same := func(v T) T { return v }
	c := &Converter[T, T]{
		name:     "Identity",
		forward:  same,
		backward: same,
	}
	c.reverse = c
	return c
}

// Compose chains two converters into one that converts A to C through B.
func Compose[A, B, C any](first *Converter[A, B], second *Converter[B, C]) *Converter[A, C] {
	return New(
		fmt.Sprintf("Compose(%s, %s)", first.name, second.name),
		func(a A) C { return second.forward(first.forward(a)) },
		func(c C) A { return first.backward(second.backward(c)) },
	)
}

// Convert applies the forward direction.
func (c *Converter[A, B]) Convert(a A) B {
	return c.forward(a)
}

// Reverse returns the converter's inverse. The two directions are twins
// built together, so Reverse().Reverse() returns the identical instance.
func (c *Converter[A, B]) Reverse() *Converter[B, A] {
	return c.reverse
}

// ConvertAll converts every element of values. A nil slice stays nil.
func (c *Converter[A, B]) ConvertAll(values []A) []B {
	if values == nil {
		return nil
	}
	out := make([]B, len(values))
	for i, v := range values {
		out[i] = c.forward(v)
	}
	return out
}

// String returns the converter's diagnostic name.
func (c *Converter[A, B]) String() string {
	return c.name
}
