package sched

import (
	"container/heap"

	"github.com/me/gatorsched/pkg/model"
)

// entryHeap implements heap.Interface over timetable entries.
type entryHeap []model.TimetableEntry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) {
	*h = append(*h, x.(model.TimetableEntry))
}

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Timetable is a min-priority queue over the completions of scheduled and
// in-progress flights, ordered by (ETA ASC, flightID ASC). It holds exactly
// one entry per assigned flight.
type Timetable struct {
	h entryHeap
}

// NewTimetable returns an empty timetable.
func NewTimetable() *Timetable {
	return &Timetable{}
}

// Push inserts an entry.
func (t *Timetable) Push(e model.TimetableEntry) {
	heap.Push(&t.h, e)
}

// PopMin removes and returns the next flight to land.
func (t *Timetable) PopMin() (model.TimetableEntry, bool) {
	if len(t.h) == 0 {
		return model.TimetableEntry{}, false
	}
	return heap.Pop(&t.h).(model.TimetableEntry), true
}

// Top returns the next flight to land without removing it.
func (t *Timetable) Top() (model.TimetableEntry, bool) {
	if len(t.h) == 0 {
		return model.TimetableEntry{}, false
	}
	return t.h[0], true
}

// Len returns the number of entries.
func (t *Timetable) Len() int {
	return len(t.h)
}

// RebuildExcluding drops every entry whose flight ID is in exclude and
// re-establishes heap order over the rest.
func (t *Timetable) RebuildExcluding(exclude map[int]struct{}) {
	kept := t.h[:0]
	for _, e := range t.h {
		if _, drop := exclude[e.FlightID]; !drop {
			kept = append(kept, e)
		}
	}
	t.h = kept
	heap.Init(&t.h)
}
