package form

// Suggestions holds the transient result list behind one search-as-you-type
// input. Each keystroke issues an independent request; because responses
// arrive in no particular order, every request is tagged with a generation
// number and only the latest generation may deliver. Anything older is
// discarded, so the list always matches the newest keystroke.
type Suggestions[T any] struct {
	gen   uint64
	items []T
}

// Next marks a new keystroke and returns the generation tag to attach to
// its request.
func (s *Suggestions[T]) Next() uint64 {
	s.gen++
	return s.gen
}

// Deliver installs a response if its generation is still current. It
// reports whether the items were accepted.
func (s *Suggestions[T]) Deliver(gen uint64, items []T) bool {
	if gen != s.gen {
		return false
	}
	s.items = items
	return true
}

// Items returns the current suggestion list.
func (s *Suggestions[T]) Items() []T {
	return s.items
}

// Clear empties the list and invalidates every in-flight request, e.g.
// after the user picks a suggestion.
func (s *Suggestions[T]) Clear() {
	s.gen++
	s.items = nil
}
