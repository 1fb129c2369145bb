package sched

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/me/gatorsched/pkg/model"
)

// Engine is the scheduling engine: it owns the pending queue, the runway
// pool, the completion timetable, and the flight registry, and implements
// every operator command. Commands drive an abstract integer clock; the
// engine is strictly sequential and no external entity mutates its state.
//
// Every transcript line goes through emit, in the order the commands
// produce them. Logging is ambient and never mixes into the transcript.
type Engine struct {
	currentTime  int
	nextRunwayID int

	pending   *PendingQueue
	pool      *RunwayPool
	timetable *Timetable
	registry  *FlightRegistry

	emit   func(line string)
	logger *slog.Logger
}

// New creates an engine with no runways. Initialize creates them.
func New(emit func(line string), logger *slog.Logger) *Engine {
	if emit == nil {
		emit = func(string) {}
	}
	return &Engine{
		nextRunwayID: 1,
		pending:      NewPendingQueue(),
		pool:         NewRunwayPool(),
		timetable:    NewTimetable(),
		registry:     NewFlightRegistry(),
		emit:         emit,
		logger:       logger.With("component", "engine"),
	}
}

// CurrentTime returns the engine clock.
func (e *Engine) CurrentTime() int {
	return e.currentTime
}

// Registry exposes the flight registry for inspection.
func (e *Engine) Registry() *FlightRegistry {
	return e.registry
}

// RunwayCount returns the number of runways created so far.
func (e *Engine) RunwayCount() int {
	return e.nextRunwayID - 1
}

// Initialize resets the engine and creates runwayCount runways, numbered
// from 1, all free at time 0.
func (e *Engine) Initialize(runwayCount int) {
	if runwayCount <= 0 {
		e.emit("Invalid input.")
		return
	}
	e.currentTime = 0
	e.nextRunwayID = runwayCount + 1
	e.pending = NewPendingQueue()
	e.timetable = NewTimetable()
	e.registry = NewFlightRegistry()
	slots := make([]model.RunwaySlot, 0, runwayCount)
	for id := 1; id <= runwayCount; id++ {
		slots = append(slots, model.RunwaySlot{RunwayID: id, NextFreeTime: 0})
	}
	e.pool.Rebuild(slots)
	e.logger.Info("initialized", "runways", runwayCount)
	e.emit(fmt.Sprintf("%d Runways are now available", runwayCount))
}

// SubmitFlight registers a new flight at submitTime and packs it onto a
// runway. The flight's own scheduled line precedes any updated-ETA line
// the placement causes.
func (e *Engine) SubmitFlight(flightID, airlineID, submitTime, priority, duration int) {
	e.advanceTime(submitTime)
	f := model.NewFlight(flightID, airlineID, submitTime, priority, duration)
	if err := e.registry.Add(f); err != nil {
		e.emit("Duplicate FlightID")
		return
	}
	updated := e.repackUnsatisfied()
	e.emit(fmt.Sprintf("Flight %d scheduled - ETA: %d", flightID, f.ETA))
	if updated != "" {
		e.emit(updated)
	}
	e.logger.Info("flight submitted",
		"flight_id", flightID, "airline_id", airlineID,
		"priority", priority, "duration", duration, "eta", f.ETA)
}

// CancelFlight removes a flight that has not yet departed and releases
// its slot.
func (e *Engine) CancelFlight(flightID, t int) {
	e.advanceTime(t)
	f, ok := e.registry.Get(flightID)
	if !ok {
		e.emit(fmt.Sprintf("Flight %d does not exist", flightID))
		return
	}
	if f.State.Departed() {
		e.emit(fmt.Sprintf("Cannot cancel. Flight %d has already departed", flightID))
		return
	}
	e.removeFlights(map[int]struct{}{flightID: {}})
	e.emit(fmt.Sprintf("Flight %d has been canceled", flightID))
	if updated := e.repackUnsatisfied(); updated != "" {
		e.emit(updated)
	}
	e.logger.Info("flight canceled", "flight_id", flightID, "time", e.currentTime)
}

// Reprioritize changes the priority of a flight that has not yet departed.
// Scheduled flights are re-placed under the new priority by the repack.
func (e *Engine) Reprioritize(flightID, t, newPriority int) {
	e.advanceTime(t)
	f, ok := e.registry.Get(flightID)
	if !ok {
		e.emit(fmt.Sprintf("Flight %d not found", flightID))
		return
	}
	if f.State.Departed() {
		e.emit(fmt.Sprintf("Cannot reprioritize. Flight %d has already departed", flightID))
		return
	}
	f.Priority = newPriority
	e.emit(fmt.Sprintf("Priority of Flight %d has been updated to %d", flightID, newPriority))
	if updated := e.repackUnsatisfied(); updated != "" {
		e.emit(updated)
	}
	e.logger.Info("flight reprioritized", "flight_id", flightID, "priority", newPriority)
}

// AddRunways creates count new runways, free at the current time.
func (e *Engine) AddRunways(count, t int) {
	e.advanceTime(t)
	if count <= 0 {
		e.emit("Invalid input.")
		return
	}
	e.nextRunwayID += count
	e.emit(fmt.Sprintf("Additional %d Runways are now available", count))
	if updated := e.repackUnsatisfied(); updated != "" {
		e.emit(updated)
	}
	e.logger.Info("runways added", "count", count, "total", e.RunwayCount())
}

// GroundHold removes every not-yet-departed flight of the airlines in the
// inclusive range [airlineLow, airlineHigh]. In-progress flights keep
// their runway.
func (e *Engine) GroundHold(airlineLow, airlineHigh, t int) {
	e.advanceTime(t)
	if airlineHigh < airlineLow {
		e.emit("Invalid input.")
		return
	}
	held := make(map[int]struct{})
	for _, flightID := range e.registry.AirlineRange(airlineLow, airlineHigh) {
		f, _ := e.registry.Get(flightID)
		if f.Unsatisfied(e.currentTime) {
			held[flightID] = struct{}{}
		}
	}
	e.removeFlights(held)
	e.emit(fmt.Sprintf("Flights of the airlines in the range [%d, %d] have been grounded",
		airlineLow, airlineHigh))
	if updated := e.repackUnsatisfied(); updated != "" {
		e.emit(updated)
	}
	e.logger.Info("ground hold",
		"airline_low", airlineLow, "airline_high", airlineHigh, "grounded", len(held))
}

// PrintActive emits one line per active flight, ascending by flight ID.
func (e *Engine) PrintActive() {
	if e.registry.Len() == 0 {
		e.emit("No active flights")
		return
	}
	for _, flightID := range e.registry.FlightIDs() {
		f, _ := e.registry.Get(flightID)
		e.emit(fmt.Sprintf("[flight%d, airline%d, runway%d, start%d, ETA%d]",
			f.FlightID, f.AirlineID, f.RunwayID, f.StartTime, f.ETA))
	}
}

// PrintSchedule emits the IDs of scheduled flights that have not started
// and whose ETA falls in the inclusive window [t1, t2], ordered by
// (ETA, flightID).
func (e *Engine) PrintSchedule(t1, t2 int) {
	var rows []model.TimetableEntry
	e.registry.Each(func(f *model.Flight) {
		if f.State == model.FlightStateScheduled && f.StartTime > e.currentTime &&
			f.ETA >= t1 && f.ETA <= t2 {
			rows = append(rows, model.TimetableEntry{ETA: f.ETA, FlightID: f.FlightID})
		}
	})
	if len(rows) == 0 {
		e.emit("There are no flights in that time period")
		return
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Less(rows[j]) })
	for _, row := range rows {
		e.emit(fmt.Sprintf("[%d]", row.FlightID))
	}
}

// Tick advances the clock. Completions settled on the way out emit their
// landing lines; the follow-up repack reports any ETA movement.
func (e *Engine) Tick(t int) {
	e.advanceTime(t)
	if updated := e.repackUnsatisfied(); updated != "" {
		e.emit(updated)
	}
}

// Quit emits the termination line. The dispatcher stops the stream.
func (e *Engine) Quit() {
	e.emit("Program Terminated!!")
}

// advanceTime moves the clock to t: completions with ETA <= t land, then
// scheduled flights whose start has been reached become in-progress.
// Time never retreats; a command stamped at the current time leaves the
// clock, and flight states, untouched.
func (e *Engine) advanceTime(t int) {
	if t <= e.currentTime {
		return
	}
	e.settleCompletions(t)
	e.currentTime = t
	e.promote()
}

// settleCompletions drains timetable entries with ETA <= t and retires
// their flights. The drained batch is re-sorted by (ETA, flightID) so
// landing lines come out in a stable order.
func (e *Engine) settleCompletions(t int) {
	var batch []model.TimetableEntry
	for {
		top, ok := e.timetable.Top()
		if !ok || top.ETA > t {
			break
		}
		entry, _ := e.timetable.PopMin()
		batch = append(batch, entry)
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].Less(batch[j]) })
	for _, entry := range batch {
		e.emit(fmt.Sprintf("Flight %d has landed at time %d", entry.FlightID, entry.ETA))
		if f, ok := e.registry.Get(entry.FlightID); ok {
			f.State = model.FlightStateCompleted
			e.registry.Remove(entry.FlightID)
		}
		e.logger.Debug("flight landed", "flight_id", entry.FlightID, "eta", entry.ETA)
	}
}

// promote transitions scheduled flights whose start time has been reached
// to in-progress. Promoted flights stay on their runway and are never
// re-placed.
func (e *Engine) promote() {
	e.registry.Each(func(f *model.Flight) {
		if f.State == model.FlightStateScheduled && f.StartTime <= e.currentTime {
			f.State = model.FlightStateInProgress
			e.logger.Debug("flight in progress",
				"flight_id", f.FlightID, "runway_id", f.RunwayID, "start", f.StartTime)
		}
	})
}

// removeFlights erases not-yet-departed flights from the pending queue,
// the timetable, and the registry in one pass.
func (e *Engine) removeFlights(flightIDs map[int]struct{}) {
	if len(flightIDs) == 0 {
		return
	}
	for flightID := range flightIDs {
		e.pending.Erase(flightID)
		e.registry.Remove(flightID)
	}
	e.timetable.RebuildExcluding(flightIDs)
}

// repackUnsatisfied rebuilds the pending queue, the runway pool, and the
// timetable from live state, then greedily re-places every unsatisfied
// flight. It returns the "Updated ETAs" line covering flights whose ETA
// moved, or "" when none did.
func (e *Engine) repackUnsatisfied() string {
	unsatisfied := e.collectUnsatisfied()

	oldETA := make(map[int]int, len(unsatisfied))
	cleared := make(map[int]struct{}, len(unsatisfied))
	e.pending.Clear()
	for _, f := range unsatisfied {
		if f.ETA != model.Unassigned {
			oldETA[f.FlightID] = f.ETA
		}
		cleared[f.FlightID] = struct{}{}
		f.ClearAssignment()
		e.pending.Push(f)
	}

	e.rebuildRunwayPool()
	e.timetable.RebuildExcluding(cleared)

	// Greedy placement: best pending flight onto the earliest-free runway.
	// Each popped slot is reinserted with the placed flight's ETA, so the
	// pool never empties and the loop ends when the pending queue does
	// (with no runways the pool starts empty and nothing is placed).
	for !e.pending.Empty() && !e.pool.Empty() {
		f, _ := e.pending.PopMax()
		slot, _ := e.pool.PopMin()
		start := slot.NextFreeTime
		if start < e.currentTime {
			start = e.currentTime
		}
		f.Assign(slot.RunwayID, start)
		e.pool.Push(model.RunwaySlot{RunwayID: slot.RunwayID, NextFreeTime: f.ETA})
		e.timetable.Push(model.TimetableEntry{ETA: f.ETA, FlightID: f.FlightID, RunwayID: slot.RunwayID})
	}

	var changed []model.TimetableEntry
	for _, f := range unsatisfied {
		if old, had := oldETA[f.FlightID]; had && f.ETA != old {
			changed = append(changed, model.TimetableEntry{FlightID: f.FlightID, ETA: f.ETA})
		}
	}
	if len(changed) == 0 {
		return ""
	}
	sort.Slice(changed, func(i, j int) bool { return changed[i].FlightID < changed[j].FlightID })

	var b strings.Builder
	b.WriteString("Updated ETAs: [")
	for i, c := range changed {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%d: %d", c.FlightID, c.ETA)
	}
	b.WriteString("]")
	return b.String()
}

// collectUnsatisfied returns the flights needing placement, ascending by
// flight ID for a deterministic snapshot order.
func (e *Engine) collectUnsatisfied() []*model.Flight {
	var flights []*model.Flight
	e.registry.Each(func(f *model.Flight) {
		if f.Unsatisfied(e.currentTime) {
			flights = append(flights, f)
		}
	})
	sort.Slice(flights, func(i, j int) bool { return flights[i].FlightID < flights[j].FlightID })
	return flights
}

// rebuildRunwayPool recomputes every runway's next-free time from the
// in-progress flights occupying it.
func (e *Engine) rebuildRunwayPool() {
	busyUntil := make(map[int]int)
	e.registry.Each(func(f *model.Flight) {
		if f.State == model.FlightStateInProgress && f.ETA > busyUntil[f.RunwayID] {
			busyUntil[f.RunwayID] = f.ETA
		}
	})
	slots := make([]model.RunwaySlot, 0, e.RunwayCount())
	for id := 1; id < e.nextRunwayID; id++ {
		free := e.currentTime
		if until := busyUntil[id]; until > free {
			free = until
		}
		slots = append(slots, model.RunwaySlot{RunwayID: id, NextFreeTime: free})
	}
	e.pool.Rebuild(slots)
}
