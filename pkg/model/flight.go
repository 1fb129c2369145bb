package model

// Unassigned marks a runway, start time, or ETA that has not been allocated.
const Unassigned = -1

// Flight is a single flight competing for a runway slot.
type Flight struct {
	FlightID   int
	AirlineID  int
	SubmitTime int
	Priority   int
	Duration   int
	RunwayID   int
	StartTime  int
	ETA        int
	State      FlightState
}

// NewFlight creates a pending flight with no runway assignment.
func NewFlight(flightID, airlineID, submitTime, priority, duration int) *Flight {
	return &Flight{
		FlightID:   flightID,
		AirlineID:  airlineID,
		SubmitTime: submitTime,
		Priority:   priority,
		Duration:   duration,
		RunwayID:   Unassigned,
		StartTime:  Unassigned,
		ETA:        Unassigned,
		State:      FlightStatePending,
	}
}

// Assigned returns true if the flight currently holds a runway slot.
func (f *Flight) Assigned() bool {
	return f.RunwayID != Unassigned
}

// Unsatisfied returns true if the flight still needs placement at time now:
// pending, or scheduled with a start at or after now (a scheduled flight
// becomes in-progress only when the clock moves). In-progress flights are
// frozen on their runway.
func (f *Flight) Unsatisfied(now int) bool {
	switch f.State {
	case FlightStatePending:
		return true
	case FlightStateScheduled:
		return f.StartTime >= now
	}
	return false
}

// Assign places the flight on a runway starting at start.
func (f *Flight) Assign(runwayID, start int) {
	f.RunwayID = runwayID
	f.StartTime = start
	f.ETA = start + f.Duration
	f.State = FlightStateScheduled
}

// ClearAssignment releases the flight's slot and returns it to PENDING.
func (f *Flight) ClearAssignment() {
	f.RunwayID = Unassigned
	f.StartTime = Unassigned
	f.ETA = Unassigned
	f.State = FlightStatePending
}
