// Package stack provides a generic last-in-first-out container.
//
// A Stack is used through a pointer. Copying a *Stack shares its storage; use Clone for an
// independent copy. Construction from a slice copies the slice, so callers keep ownership
// of what they pass in.
package stack

import (
	"encoding/json"
	"fmt"
	"hash/maphash"
	"slices"
	"strings"

	"github.com/samber/mo"
	"gopkg.in/yaml.v3"
)

// Stack is a LIFO sequence. The top of the stack is the last element pushed.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T
}

// New returns a stack holding items in order, so the last item is on top.
func New[T any](items ...T) *Stack[T] {
	return From(items)
}

// From returns a stack holding a copy of items. items[len(items)-1] is on top.
func From[T any](items []T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element, or mo.None if the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}
	n := len(s.items) - 1
	v := s.items[n]
	var zero T
	s.items[n] = zero
	s.items = s.items[:n]
	return mo.Some(v)
}

// Peek returns the top element without removing it, or mo.None if the stack is empty.
func (s *Stack[T]) Peek() mo.Option[T] {
	if s.IsEmpty() {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Items returns a copy of the elements, bottom first.
func (s *Stack[T]) Items() []T {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Clone returns a stack with its own copy of the storage.
func (s *Stack[T]) Clone() *Stack[T] {
	return From(s.Items())
}

// String formats the stack bottom first, e.g. [1, 2, 3] or ["a", "b"].
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.Items() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%#v", v)
	}
	b.WriteByte(']')
	return b.String()
}

// Equal reports whether a and b hold equal elements in the same order.
// A nil stack equals an empty one.
func Equal[T comparable](a, b *Stack[T]) bool {
	return slices.Equal(a.Items(), b.Items())
}

// Hash combines the hash of every element of s, bottom first. Stacks that are Equal
// hash to the same value for the same seed.
func Hash[T comparable](seed maphash.Seed, s *Stack[T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	items := s.Items()
	maphash.WriteComparable(&h, len(items))
	for _, v := range items {
		maphash.WriteComparable(&h, v)
	}
	return h.Sum64()
}

// MarshalJSON encodes the stack as a JSON array, bottom first.
func (s Stack[T]) MarshalJSON() ([]byte, error) {
	items := s.items
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf(`error in (stack.Stack).MarshalJSON: %w`, err)
	}
	return b, nil
}

// UnmarshalJSON decodes a JSON array into the stack; the last element ends up on top.
// JSON null leaves the stack unchanged.
func (s *Stack[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf(`error in (*stack.Stack).UnmarshalJSON: %w`, err)
	}
	s.items = items
	return nil
}

// MarshalYAML encodes the stack as a YAML sequence, bottom first.
func (s Stack[T]) MarshalYAML() (any, error) {
	if s.items == nil {
		return []T{}, nil
	}
	return s.items, nil
}

// UnmarshalYAML decodes a YAML sequence into the stack.
func (s *Stack[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return fmt.Errorf(`error in (*stack.Stack).UnmarshalYAML: %w`, err)
	}
	s.items = items
	return nil
}
