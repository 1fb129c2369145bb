package sched

import (
	"testing"

	"github.com/me/gatorsched/pkg/model"
)

func pendingFlight(fid, submit, pri int) *model.Flight {
	return model.NewFlight(fid, 1, submit, pri, 10)
}

func drain(q *PendingQueue) []int {
	var ids []int
	for {
		f, ok := q.PopMax()
		if !ok {
			break
		}
		ids = append(ids, f.FlightID)
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPendingQueue_Order(t *testing.T) {
	tests := []struct {
		name    string
		flights []*model.Flight
		want    []int
	}{
		{
			"priority descending",
			[]*model.Flight{pendingFlight(1, 0, 3), pendingFlight(2, 0, 9), pendingFlight(3, 0, 5)},
			[]int{2, 3, 1},
		},
		{
			"submit time breaks priority ties",
			[]*model.Flight{pendingFlight(1, 7, 5), pendingFlight(2, 3, 5), pendingFlight(3, 5, 5)},
			[]int{2, 3, 1},
		},
		{
			"flight id breaks full ties",
			[]*model.Flight{pendingFlight(9, 0, 5), pendingFlight(2, 0, 5), pendingFlight(4, 0, 5)},
			[]int{2, 4, 9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewPendingQueue()
			for _, f := range tt.flights {
				q.Push(f)
			}
			if got := drain(q); !equalIDs(got, tt.want) {
				t.Errorf("drain = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPendingQueue_EraseRoot(t *testing.T) {
	q := NewPendingQueue()
	q.Push(pendingFlight(1, 0, 9))
	q.Push(pendingFlight(2, 0, 5))
	q.Push(pendingFlight(3, 0, 7))

	if !q.Erase(1) {
		t.Fatal("Erase(1) = false, want true")
	}
	if got := drain(q); !equalIDs(got, []int{3, 2}) {
		t.Errorf("drain = %v, want [3 2]", got)
	}
}

func TestPendingQueue_EraseInner(t *testing.T) {
	q := NewPendingQueue()
	for fid := 1; fid <= 6; fid++ {
		q.Push(pendingFlight(fid, 0, fid))
	}
	if !q.Erase(4) {
		t.Fatal("Erase(4) = false, want true")
	}
	if got := drain(q); !equalIDs(got, []int{6, 5, 3, 2, 1}) {
		t.Errorf("drain = %v, want [6 5 3 2 1]", got)
	}
}

func TestPendingQueue_EraseMissing(t *testing.T) {
	q := NewPendingQueue()
	q.Push(pendingFlight(1, 0, 5))
	if q.Erase(99) {
		t.Error("Erase of unknown flight should return false")
	}
	if q.Len() != 1 {
		t.Errorf("Len = %d, want 1", q.Len())
	}
}

func TestPendingQueue_InterleavedOps(t *testing.T) {
	q := NewPendingQueue()
	q.Push(pendingFlight(1, 0, 1))
	q.Push(pendingFlight(2, 0, 8))
	if f, _ := q.PopMax(); f.FlightID != 2 {
		t.Fatalf("PopMax = %d, want 2", f.FlightID)
	}
	q.Push(pendingFlight(3, 0, 4))
	q.Push(pendingFlight(4, 0, 6))
	q.Erase(3)
	if got := drain(q); !equalIDs(got, []int{4, 1}) {
		t.Errorf("drain = %v, want [4 1]", got)
	}
}

func TestPendingQueue_Clear(t *testing.T) {
	q := NewPendingQueue()
	q.Push(pendingFlight(1, 0, 1))
	q.Push(pendingFlight(2, 0, 2))
	q.Clear()
	if !q.Empty() || q.Len() != 0 {
		t.Errorf("after Clear: Empty=%v Len=%d", q.Empty(), q.Len())
	}
	if _, ok := q.PopMax(); ok {
		t.Error("PopMax on cleared queue should report empty")
	}
	// The queue stays usable after Clear.
	q.Push(pendingFlight(3, 0, 3))
	if f, _ := q.PopMax(); f.FlightID != 3 {
		t.Error("push after Clear lost the entry")
	}
}
