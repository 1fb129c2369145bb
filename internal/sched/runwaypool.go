package sched

import (
	"container/heap"

	"github.com/me/gatorsched/pkg/model"
)

// slotHeap implements heap.Interface over runway slots.
type slotHeap []model.RunwaySlot

func (h slotHeap) Len() int           { return len(h) }
func (h slotHeap) Less(i, j int) bool { return h[i].Less(h[j]) }
func (h slotHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *slotHeap) Push(x any) {
	*h = append(*h, x.(model.RunwaySlot))
}

func (h *slotHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// RunwayPool is a min-priority queue of runway slots ordered by
// (nextFreeTime ASC, runwayID ASC).
type RunwayPool struct {
	h slotHeap
}

// NewRunwayPool returns an empty pool.
func NewRunwayPool() *RunwayPool {
	return &RunwayPool{}
}

// Push inserts a slot.
func (p *RunwayPool) Push(s model.RunwaySlot) {
	heap.Push(&p.h, s)
}

// PopMin removes and returns the earliest-free slot.
func (p *RunwayPool) PopMin() (model.RunwaySlot, bool) {
	if len(p.h) == 0 {
		return model.RunwaySlot{}, false
	}
	return heap.Pop(&p.h).(model.RunwaySlot), true
}

// Empty returns true when the pool holds no slots.
func (p *RunwayPool) Empty() bool {
	return len(p.h) == 0
}

// Len returns the number of slots in the pool.
func (p *RunwayPool) Len() int {
	return len(p.h)
}

// Rebuild replaces the pool contents with slots.
func (p *RunwayPool) Rebuild(slots []model.RunwaySlot) {
	p.h = append(p.h[:0], slots...)
	heap.Init(&p.h)
}
