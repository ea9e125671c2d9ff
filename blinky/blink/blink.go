// Package blink drives a single LED through a fixed on/off cycle and reports
// every transition as a line of text on a serial writer.
//
// The package has no dependency on the TinyGo machine package so the cycle
// can be exercised on the host. A machine.Pin satisfies [Pin] and
// machine.Serial satisfies io.Writer.
package blink

import (
	"io"
	"log/slog"
	"time"
)

const (
	Interval = 1000 * time.Millisecond // Time spent in each state.
	BaudRate = 9600                    // Serial symbol rate.
)

// Pin is a digital output line.
type Pin interface {
	High()
	Low()
}

// State is the level applied to the LED pin.
type State bool

const (
	Low  State = false
	High State = true
)

// Lines written to serial. Preallocated so the loop never touches the heap.
var (
	highLine = []byte("HIGH\r\n")
	lowLine  = []byte("LOW\r\n")
)

func (s State) String() string {
	if s == High {
		return "HIGH"
	}
	return "LOW"
}

// Next returns the state that follows s.
func (s State) Next() State { return !s }

func (s State) line() []byte {
	if s == High {
		return highLine
	}
	return lowLine
}

// Controller toggles a pin between High and Low every Interval.
type Controller struct {
	pin    Pin
	out    io.Writer
	logger *slog.Logger
	state  State
	sleep  func(time.Duration)
}

// New returns a Controller whose first Step energizes pin. A nil logger
// disables logging.
func New(pin Pin, out io.Writer, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(127), // Discard everything.
		}))
	}
	return &Controller{
		pin:    pin,
		out:    out,
		logger: logger,
		state:  High,
		sleep:  time.Sleep,
	}
}

// State returns the level the next call to Step applies.
func (c *Controller) State() State { return c.state }

// Step applies the current level to the pin, writes its line to serial,
// waits Interval and flips the state. The line is written only after the pin
// has been driven so it always reports the level already on the wire.
func (c *Controller) Step() {
	if c.state == High {
		c.pin.High()
	} else {
		c.pin.Low()
	}
	// Serial errors are not recoverable here; the write is fire and forget.
	c.out.Write(c.state.line())
	c.logger.Debug("blink:transition", slog.String("level", c.state.String()))

	c.sleep(Interval)
	c.state = c.state.Next()
}

// RunForever runs the blink cycle. It never returns.
func (c *Controller) RunForever() {
	for {
		c.Step()
	}
}
