package arena

import "sort"

// intSet is a set of small non-negative integers (or the reserved
// negative sentinels w1Sink/l1Sink) with deterministic, ascending
// iteration order. preds/succs/incomplete/w0/w1 are all backed by one of
// these: the arena never depends on insertion order, only on value order.
type intSet struct {
	m map[int]struct{}
}

func newIntSet() intSet {
	return intSet{m: make(map[int]struct{})}
}

func (s *intSet) Insert(v int) bool {
	if s.m == nil {
		s.m = make(map[int]struct{})
	}
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Remove deletes v, reporting whether it was present. Named to match the
// upstream removal calls it mirrors, even though nothing here needs to
// be order-stable across the removal.
func (s *intSet) Remove(v int) bool {
	if s.m == nil {
		return false
	}
	if _, ok := s.m[v]; !ok {
		return false
	}
	delete(s.m, v)
	return true
}

func (s *intSet) Contains(v int) bool {
	if s.m == nil {
		return false
	}
	_, ok := s.m[v]
	return ok
}

func (s *intSet) Len() int { return len(s.m) }

func (s *intSet) IsEmpty() bool { return len(s.m) == 0 }

// Sorted returns the members in ascending order.
func (s *intSet) Sorted() []int {
	out := make([]int, 0, len(s.m))
	for v := range s.m {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Take empties the set and returns its former members in ascending
// order, mirroring the upstream std::mem::take idiom used before
// iterating a set that the loop body also mutates.
func (s *intSet) Take() []int {
	out := s.Sorted()
	s.m = make(map[int]struct{})
	return out
}
