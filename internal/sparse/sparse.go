// Package sparse implements the sparse-set trick for bounded integer
// universes: O(1) insert/contains/remove and dense, allocation-free
// iteration, at the cost of reserving one sparse-array slot per possible
// value up front. Package nfa uses it for the set of StateIDs visited during
// epsilon-closure, where the universe size (the automaton's state count) is
// known before the set is ever touched.
package sparse

// SparseSet holds a subset of [0, capacity) as two parallel arrays: dense
// lists the members in insertion order (dense[:size]), sparse maps each
// possible value to its slot in dense. A value is a true member only when
// sparse[value] indexes into the live prefix of dense AND dense at that
// index points back to value — an uninitialized sparse slot can otherwise
// hold garbage that happens to look like a valid index, which is the
// standard sparse-set cross-check.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// NewSparseSet returns an empty set over [0, capacity). Insert panics if
// given a value >= capacity; Contains reports false for such a value and
// Remove leaves the set unchanged.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set; a value already present is left untouched.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether value is currently in the set.
func (s *SparseSet) Contains(value uint32) bool {
	if len(s.sparse) > 0x7FFFFFFF {
		return false
	}
	//nolint:gosec // G115: len bounded above before this uint32 conversion
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Remove drops value from the set; a value not present is left untouched.
// The last element of dense is swapped into the removed slot so dense stays
// contiguous without shifting every element after it.
func (s *SparseSet) Remove(value uint32) {
	if !s.Contains(value) {
		return
	}
	idx := s.sparse[value]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
	s.dense = s.dense[:s.size]
}

// Clear empties the set without releasing the backing arrays.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Size returns the number of elements currently in the set.
func (s *SparseSet) Size() int { return int(s.size) }

// IsEmpty reports whether the set has no elements.
func (s *SparseSet) IsEmpty() bool { return s.size == 0 }

// Values returns the set's members. The slice aliases internal storage and
// is only valid until the next call to Insert, Remove, or Clear.
func (s *SparseSet) Values() []uint32 { return s.dense[:s.size] }

// Iter calls f once per member, in the order dense holds them: insertion
// order, except that Remove moves the last member into the removed slot.
func (s *SparseSet) Iter(f func(uint32)) {
	for _, v := range s.dense[:s.size] {
		f(v)
	}
}
