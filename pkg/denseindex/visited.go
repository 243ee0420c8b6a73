package denseindex

import "sync"

// visitedSet is the shared "skip" map one traversal's fanned-out goroutines
// consult before descending into a neighbor. LoadOrStore makes the
// check-then-insert atomic across goroutines instead of two separate map
// operations.
type visitedSet struct {
	m sync.Map
}

func newVisitedSet() *visitedSet {
	return &visitedSet{}
}

// claim reports whether id was not yet visited, marking it visited as a
// side effect. A caller that gets false must not descend into id.
func (v *visitedSet) claim(id string) bool {
	_, loaded := v.m.LoadOrStore(id, struct{}{})
	return !loaded
}
