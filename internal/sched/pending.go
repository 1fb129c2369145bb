package sched

import "github.com/me/gatorsched/pkg/model"

// pendingNode is a node of the pairing heap, in leftmost-child /
// right-sibling form. prev points at the parent when the node is a
// leftmost child and at the left sibling otherwise; it is what makes
// erase-by-flight-ID an O(1) cut plus a merge.
type pendingNode struct {
	flight  *model.Flight
	child   *pendingNode
	sibling *pendingNode
	prev    *pendingNode
}

// PendingQueue is a max pairing heap over pending flights ordered by
// (priority DESC, submitTime ASC, flightID ASC). The order is total:
// flight IDs are unique, so no equality ties exist.
type PendingQueue struct {
	root  *pendingNode
	nodes map[int]*pendingNode
}

// NewPendingQueue returns an empty queue.
func NewPendingQueue() *PendingQueue {
	return &PendingQueue{nodes: make(map[int]*pendingNode)}
}

// outranks reports whether a is placed before b.
func outranks(a, b *model.Flight) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if a.SubmitTime != b.SubmitTime {
		return a.SubmitTime < b.SubmitTime
	}
	return a.FlightID < b.FlightID
}

// meld merges two pairing heap trees; the tree with the higher-ranked
// root becomes the parent.
func meld(a, b *pendingNode) *pendingNode {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if outranks(b.flight, a.flight) {
		a, b = b, a
	}
	b.prev = a
	b.sibling = a.child
	if a.child != nil {
		a.child.prev = b
	}
	a.child = b
	return a
}

// meldPairs combines a sibling list with the two-pass scheme: pair up
// left to right, then meld the pairs right to left.
func meldPairs(first *pendingNode) *pendingNode {
	if first == nil || first.sibling == nil {
		return first
	}
	second := first.sibling
	rest := second.sibling
	first.sibling = nil
	second.sibling = nil
	if rest != nil {
		rest.prev = nil
	}
	return meld(meld(first, second), meldPairs(rest))
}

// Push inserts a flight. O(1) amortized.
func (q *PendingQueue) Push(f *model.Flight) {
	n := &pendingNode{flight: f}
	q.nodes[f.FlightID] = n
	q.root = meld(q.root, n)
	q.root.prev = nil
}

// PopMax removes and returns the highest-ranked flight. O(log n) amortized.
func (q *PendingQueue) PopMax() (*model.Flight, bool) {
	if q.root == nil {
		return nil, false
	}
	top := q.root
	if top.child != nil {
		top.child.prev = nil
	}
	q.root = meldPairs(top.child)
	if q.root != nil {
		q.root.prev = nil
		q.root.sibling = nil
	}
	delete(q.nodes, top.flight.FlightID)
	return top.flight, true
}

// Erase removes the entry for flightID, if present.
func (q *PendingQueue) Erase(flightID int) bool {
	n, ok := q.nodes[flightID]
	if !ok {
		return false
	}
	delete(q.nodes, flightID)

	if n == q.root {
		if n.child != nil {
			n.child.prev = nil
		}
		q.root = meldPairs(n.child)
	} else {
		// Cut n out of its parent's child list, then fold its own
		// children back into the heap.
		if n.prev.child == n {
			n.prev.child = n.sibling
		} else {
			n.prev.sibling = n.sibling
		}
		if n.sibling != nil {
			n.sibling.prev = n.prev
		}
		if n.child != nil {
			n.child.prev = nil
		}
		q.root = meld(q.root, meldPairs(n.child))
	}
	if q.root != nil {
		q.root.prev = nil
		q.root.sibling = nil
	}
	return true
}

// Clear drops every entry.
func (q *PendingQueue) Clear() {
	q.root = nil
	q.nodes = make(map[int]*pendingNode)
}

// Len returns the number of queued flights.
func (q *PendingQueue) Len() int {
	return len(q.nodes)
}

// Empty returns true when no flights are queued.
func (q *PendingQueue) Empty() bool {
	return len(q.nodes) == 0
}
