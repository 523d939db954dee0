package maxflow

import "github.com/ScottSallinen/mincut/utils"

type setEntry struct {
	key   uint32
	stamp uint32
}

// orderedSet is a set of dense keys that hands out its members in insertion order.
// Removal is lazy: the queue keeps stale entries, which are skipped by matching stamps.
type orderedSet struct {
	queue  utils.Deque[setEntry]
	member []bool
	stamp  []uint32
	size   int
}

func newOrderedSet(keys int) orderedSet {
	return orderedSet{
		member: make([]bool, keys),
		stamp:  make([]uint32, keys),
	}
}

func (s *orderedSet) Len() int {
	return s.size
}

func (s *orderedSet) Has(key uint32) bool {
	return s.member[key]
}

// Insert returns false if key was already present; its position is then unchanged.
func (s *orderedSet) Insert(key uint32) bool {
	if s.member[key] {
		return false
	}
	s.member[key] = true
	s.stamp[key]++
	s.size++
	s.queue.PushBack(setEntry{key: key, stamp: s.stamp[key]})
	return true
}

// Remove returns false if key was not present.
func (s *orderedSet) Remove(key uint32) bool {
	if !s.member[key] {
		return false
	}
	s.member[key] = false
	s.size--
	if s.size == 0 {
		s.queue.Reset()
	}
	return true
}

// Front is the oldest member still in the set.
func (s *orderedSet) Front() (key uint32, ok bool) {
	for {
		e, ok := s.queue.Front()
		if !ok {
			return 0, false
		}
		if s.member[e.key] && s.stamp[e.key] == e.stamp {
			return e.key, true
		}
		s.queue.PopFront()
	}
}

func (s *orderedSet) Clear() {
	for i := range s.member {
		s.member[i] = false
	}
	s.size = 0
	s.queue.Reset()
}
