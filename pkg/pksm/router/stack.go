package router

// Stack holds the navigation history. The top entry is the active screen;
// the entries below it are restored, in order, by GoBack.
type Stack struct {
	entries []*Screen
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]*Screen, 0),
	}
}

// Push adds a screen to the top of the stack.
func (s *Stack) Push(screen *Screen) {
	s.entries = append(s.entries, screen)
}

// Pop removes and returns the top screen.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *Screen {
	if len(s.entries) == 0 {
		return nil
	}
	top := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// Peek returns the top screen without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *Screen {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Replace swaps the top screen for screen, or pushes it onto an empty stack.
func (s *Stack) Replace(screen *Screen) {
	if len(s.entries) == 0 {
		s.Push(screen)
		return
	}
	s.entries[len(s.entries)-1] = screen
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries from the stack.
func (s *Stack) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}
