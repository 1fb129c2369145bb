package sched

import (
	"errors"
	"sort"

	"github.com/me/gatorsched/pkg/model"
)

// ErrDuplicateFlight is returned when a flight ID is already active.
var ErrDuplicateFlight = errors.New("duplicate flight id")

// FlightRegistry is the authoritative store of active flights, with a
// secondary airline index for ground-hold range scans. The registry
// exclusively owns the Flight records; queues hold IDs or references
// that die with the registry entry.
type FlightRegistry struct {
	flights   map[int]*model.Flight
	byAirline map[int]map[int]struct{}
}

// NewFlightRegistry returns an empty registry.
func NewFlightRegistry() *FlightRegistry {
	return &FlightRegistry{
		flights:   make(map[int]*model.Flight),
		byAirline: make(map[int]map[int]struct{}),
	}
}

// Add registers a flight. Fails if the flight ID is already active.
func (r *FlightRegistry) Add(f *model.Flight) error {
	if _, exists := r.flights[f.FlightID]; exists {
		return ErrDuplicateFlight
	}
	r.flights[f.FlightID] = f
	bucket, ok := r.byAirline[f.AirlineID]
	if !ok {
		bucket = make(map[int]struct{})
		r.byAirline[f.AirlineID] = bucket
	}
	bucket[f.FlightID] = struct{}{}
	return nil
}

// Get returns the flight for flightID, if active.
func (r *FlightRegistry) Get(flightID int) (*model.Flight, bool) {
	f, ok := r.flights[flightID]
	return f, ok
}

// Remove deletes a flight and prunes its airline bucket when the bucket
// becomes empty, so the index never holds empty-but-present keys.
func (r *FlightRegistry) Remove(flightID int) bool {
	f, ok := r.flights[flightID]
	if !ok {
		return false
	}
	delete(r.flights, flightID)
	if bucket, ok := r.byAirline[f.AirlineID]; ok {
		delete(bucket, flightID)
		if len(bucket) == 0 {
			delete(r.byAirline, f.AirlineID)
		}
	}
	return true
}

// Len returns the number of active flights.
func (r *FlightRegistry) Len() int {
	return len(r.flights)
}

// Each calls fn for every active flight, in no particular order.
func (r *FlightRegistry) Each(fn func(*model.Flight)) {
	for _, f := range r.flights {
		fn(f)
	}
}

// FlightIDs returns the active flight IDs in ascending order.
func (r *FlightRegistry) FlightIDs() []int {
	ids := make([]int, 0, len(r.flights))
	for id := range r.flights {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// AirlineRange returns, in ascending order, the IDs of active flights
// whose airline falls in the inclusive range [lo, hi].
func (r *FlightRegistry) AirlineRange(lo, hi int) []int {
	var ids []int
	for airlineID, bucket := range r.byAirline {
		if airlineID < lo || airlineID > hi {
			continue
		}
		for id := range bucket {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}
