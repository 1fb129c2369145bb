package command

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/me/gatorsched/internal/sched"
)

// Dispatcher routes parsed commands to the scheduling engine.
type Dispatcher struct {
	engine *sched.Engine
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher driving engine.
func NewDispatcher(engine *sched.Engine, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		engine: engine,
		logger: logger.With("component", "dispatcher"),
	}
}

// Execute runs a single command against the engine. It reports done=true
// when the stream should stop.
func (d *Dispatcher) Execute(cmd Command) (done bool) {
	a := cmd.Args
	switch cmd.Op {
	case OpInitialize:
		d.engine.Initialize(a[0])
	case OpSubmitFlight:
		d.engine.SubmitFlight(a[0], a[1], a[2], a[3], a[4])
	case OpCancelFlight:
		d.engine.CancelFlight(a[0], a[1])
	case OpReprioritize:
		d.engine.Reprioritize(a[0], a[1], a[2])
	case OpAddRunways:
		d.engine.AddRunways(a[0], a[1])
	case OpGroundHold:
		d.engine.GroundHold(a[0], a[1], a[2])
	case OpPrintActive:
		d.engine.PrintActive()
	case OpPrintSchedule:
		d.engine.PrintSchedule(a[0], a[1])
	case OpTick:
		d.engine.Tick(a[0])
	case OpQuit:
		d.engine.Quit()
		return true
	}
	return false
}

// Run drives a whole command stream. Blank lines and # comments are
// skipped; malformed lines are logged and skipped. Any line containing
// "Quit" ends processing, matching the original transcript contract.
func (d *Dispatcher) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, err := ParseLine(line)
		if err != nil {
			d.logger.Debug("skipping malformed line", "line", line, "error", err)
		} else if d.Execute(cmd) {
			return nil
		}
		if strings.Contains(line, "Quit") {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read command stream: %w", err)
	}
	return nil
}
