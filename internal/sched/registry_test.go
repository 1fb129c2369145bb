package sched

import (
	"errors"
	"testing"

	"github.com/me/gatorsched/pkg/model"
)

func TestFlightRegistry_AddDuplicate(t *testing.T) {
	r := NewFlightRegistry()
	if err := r.Add(model.NewFlight(1, 10, 0, 5, 10)); err != nil {
		t.Fatalf("first Add: %v", err)
	}
	err := r.Add(model.NewFlight(1, 20, 5, 9, 3))
	if !errors.Is(err, ErrDuplicateFlight) {
		t.Errorf("second Add = %v, want ErrDuplicateFlight", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
}

func TestFlightRegistry_RemovePrunesAirlineBucket(t *testing.T) {
	r := NewFlightRegistry()
	r.Add(model.NewFlight(1, 10, 0, 5, 10))
	r.Add(model.NewFlight(2, 10, 0, 5, 10))

	r.Remove(1)
	if got := r.AirlineRange(10, 10); !equalIDs(got, []int{2}) {
		t.Errorf("AirlineRange = %v, want [2]", got)
	}

	r.Remove(2)
	if got := r.AirlineRange(10, 10); len(got) != 0 {
		t.Errorf("AirlineRange after full removal = %v, want empty", got)
	}
	if r.Remove(2) {
		t.Error("removing an absent flight should return false")
	}
}

func TestFlightRegistry_AirlineRange(t *testing.T) {
	r := NewFlightRegistry()
	r.Add(model.NewFlight(1, 5, 0, 1, 5))
	r.Add(model.NewFlight(2, 7, 0, 1, 5))
	r.Add(model.NewFlight(3, 7, 0, 1, 5))
	r.Add(model.NewFlight(4, 9, 0, 1, 5))

	tests := []struct {
		name   string
		lo, hi int
		want   []int
	}{
		{"single airline", 5, 5, []int{1}},
		{"range", 5, 7, []int{1, 2, 3}},
		{"all", 0, 100, []int{1, 2, 3, 4}},
		{"none", 10, 20, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.AirlineRange(tt.lo, tt.hi); !equalIDs(got, tt.want) {
				t.Errorf("AirlineRange(%d, %d) = %v, want %v", tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestFlightRegistry_FlightIDsSorted(t *testing.T) {
	r := NewFlightRegistry()
	for _, fid := range []int{9, 1, 5, 3} {
		r.Add(model.NewFlight(fid, 1, 0, 1, 5))
	}
	if got := r.FlightIDs(); !equalIDs(got, []int{1, 3, 5, 9}) {
		t.Errorf("FlightIDs = %v, want ascending", got)
	}
}
