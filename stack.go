package mui

// Fixed stack depths. Pushing past a limit is dropped and flagged
// (DiagStackOverflow) instead of growing.
const (
	ContainerStackSize = 32
	ClipStackSize      = 32
	IDStackSize        = 32
	LayoutStackSize    = 16
	RootListSize       = 32
	StyleVarStackSize  = 16
)

// stack is a fixed-capacity LIFO. The backing array is allocated once, so
// pointers returned by peek stay valid until the element is popped.
type stack[T any] struct {
	items []T
}

func newStack[T any](limit int) stack[T] {
	return stack[T]{items: make([]T, 0, limit)}
}

// push appends v. Returns false if the stack is full.
func (s *stack[T]) push(v T) bool {
	if len(s.items) == cap(s.items) {
		return false
	}
	s.items = append(s.items, v)
	return true
}

// pop removes the top element. Returns false if the stack is empty.
func (s *stack[T]) pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	v := s.items[n-1]
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// peek returns a pointer to the top element, or nil.
func (s *stack[T]) peek() *T {
	n := len(s.items)
	if n == 0 {
		return nil
	}
	return &s.items[n-1]
}

func (s *stack[T]) len() int {
	return len(s.items)
}

// reset empties the stack, keeping its capacity.
func (s *stack[T]) reset() {
	clear(s.items)
	s.items = s.items[:0]
}
