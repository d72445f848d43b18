package interpreter

import "github.com/cairnLang/cairn/pkg/types"

// Queue is a first-in-first-out buffer of atoms awaiting evaluation.
type Queue struct {
	atoms []types.Atom
}

// NewQueue returns a Queue holding the given atoms.
func NewQueue(atoms ...types.Atom) *Queue {
	return &Queue{atoms: append([]types.Atom{}, atoms...)}
}

// EnqueueAll appends atoms at the tail, in order.
func (q *Queue) EnqueueAll(atoms []types.Atom) {
	q.atoms = append(q.atoms, atoms...)
}

// Dequeue removes and returns the head atom.
func (q *Queue) Dequeue() (types.Atom, bool) {
	if len(q.atoms) == 0 {
		return nil, false
	}
	a := q.atoms[0]
	q.atoms[0] = nil
	q.atoms = q.atoms[1:]
	if len(q.atoms) == 0 {
		q.atoms = nil
	}
	return a, true
}

// Index returns the position of the first atom equal to a, or -1.
func (q *Queue) Index(a types.Atom) int {
	for n, b := range q.atoms {
		if b == a {
			return n
		}
	}
	return -1
}

// DequeueTo removes every atom up to and including the first one equal to
// a, and returns those before it. If a is not queued, the queue is left as
// it was and ok is false.
func (q *Queue) DequeueTo(a types.Atom) (atoms []types.Atom, ok bool) {
	n := q.Index(a)
	if n < 0 {
		return nil, false
	}
	atoms = append([]types.Atom{}, q.atoms[:n]...)
	q.atoms = append([]types.Atom{}, q.atoms[n+1:]...)
	return atoms, true
}

// Clear drops every queued atom.
func (q *Queue) Clear() {
	q.atoms = nil
}

// Empty reports whether nothing is queued.
func (q *Queue) Empty() bool { return len(q.atoms) == 0 }

func (q *Queue) String() string { return types.AtomsString(q.atoms) }
