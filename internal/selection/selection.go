package selection

// Selection is the single optional "currently open step" value.
// The zero value is empty.
type Selection struct {
	step int
	set  bool
}

// Select sets the selection to step n. A later Select overwrites an
// earlier one.
func (s *Selection) Select(n int) {
	s.step = n
	s.set = true
}

// Clear empties the selection. Clearing an empty selection is a no-op.
func (s *Selection) Clear() {
	s.step = 0
	s.set = false
}

// Current returns the selected step and whether one is selected.
func (s Selection) Current() (int, bool) {
	return s.step, s.set
}

// IsEmpty reports whether no step is selected.
func (s Selection) IsEmpty() bool {
	return !s.set
}
