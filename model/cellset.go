package model

// CellSet is a deduplicated collection of cells that remembers insertion order
type CellSet struct {
	order []Cell
	index map[Cell]struct{}
}

// NewCellSet returns a set holding cells in first-seen order
func NewCellSet(cells ...Cell) *CellSet {
	s := &CellSet{index: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts c and reports whether it was not already present
func (s *CellSet) Add(c Cell) bool {
	if s.index == nil {
		s.index = make(map[Cell]struct{})
	}
	if _, ok := s.index[c]; ok {
		return false
	}
	s.index[c] = struct{}{}
	s.order = append(s.order, c)
	return true
}

// Has reports whether c is in the set
func (s *CellSet) Has(c Cell) bool {
	_, ok := s.index[c]
	return ok
}

// Len returns the number of distinct cells
func (s *CellSet) Len() int {
	return len(s.order)
}

// Cells returns the members in insertion order
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, len(s.order))
	copy(out, s.order)
	return out
}

// Equal reports set equality, ignoring order
func (s *CellSet) Equal(o *CellSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, c := range s.order {
		if !o.Has(c) {
			return false
		}
	}
	return true
}
