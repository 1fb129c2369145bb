package model

// FlightState represents the lifecycle state of a Flight.
type FlightState string

const (
	FlightStatePending    FlightState = "PENDING"
	FlightStateScheduled  FlightState = "SCHEDULED"
	FlightStateInProgress FlightState = "IN_PROGRESS"
	FlightStateCompleted  FlightState = "COMPLETED"
)

// String returns the string representation of the flight state.
func (s FlightState) String() string {
	return string(s)
}

// IsTerminal returns true if the flight is in a final state.
func (s FlightState) IsTerminal() bool {
	return s == FlightStateCompleted
}

// Departed returns true once the flight has left the gate: it can no
// longer be canceled, reprioritized, or moved to another runway.
func (s FlightState) Departed() bool {
	return s == FlightStateInProgress || s == FlightStateCompleted
}

// ValidFlightTransitions defines the allowed state transitions for Flights.
// SCHEDULED may fall back to PENDING: flights whose start lies in the
// future are cleared and re-placed whenever the runway landscape changes.
var ValidFlightTransitions = map[FlightState][]FlightState{
	FlightStatePending:    {FlightStateScheduled},
	FlightStateScheduled:  {FlightStatePending, FlightStateInProgress},
	FlightStateInProgress: {FlightStateCompleted},
}

// CanTransitionTo returns true if moving from the current state to next is valid.
func (s FlightState) CanTransitionTo(next FlightState) bool {
	for _, allowed := range ValidFlightTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
