// Package setutil provides a small set type for id bookkeeping.
package setutil

import "sort"

type UintSet map[uint]struct{}

func NewUintSet(ids ...uint) UintSet {
	s := make(UintSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s UintSet) Add(id uint) {
	s[id] = struct{}{}
}

func (s UintSet) Has(id uint) bool {
	_, ok := s[id]
	return ok
}

func (s UintSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s UintSet) Sorted() []uint {
	out := make([]uint, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Missing returns the members of want that are not in s, in ascending order.
func (s UintSet) Missing(want UintSet) []uint {
	var out []uint
	for _, id := range want.Sorted() {
		if !s.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
