// Package lifo implements a generic last-in first-out stack.
package lifo

type Stack[T any] struct {
	items []T
}

// Push adds an item to the stack
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the last item from the stack
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	val := s.items[len(s.items)-1]
	var zero T
	s.items[len(s.items)-1] = zero // drop the reference for the GC
	s.items = s.items[:len(s.items)-1]
	return val, true
}

// Peek returns the last item without removing it
func (s *Stack[T]) Peek() (T, bool) {
	return s.Below(0)
}

// Below returns the item depth positions under the top; Below(0) is the top.
func (s *Stack[T]) Below(depth int) (T, bool) {
	i := len(s.items) - 1 - depth
	if depth < 0 || i < 0 {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Len returns the number of items in the stack
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// IsEmpty checks if the stack is empty
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}
