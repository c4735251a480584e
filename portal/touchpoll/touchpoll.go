// Package touchpoll turns touchscreen samples into handler calls.
//
// The loop has two states. While Idle it samples the touchscreen once per
// Step; a contact moves it to Handling, the handler runs to completion, and
// the loop goes back to Idle whether or not the handler failed. Touches
// during Handling are not observed.
package touchpoll

import (
	"context"

	"tinygo.org/x/drivers/touch"
)

// State is the loop state.
type State uint8

const (
	Idle State = iota
	Handling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Handling:
		return "handling"
	default:
		return "unknown"
	}
}

// Trigger selects when a contact dispatches the handler.
type Trigger uint8

const (
	// Edge dispatches once per press: the first contact sample after a
	// no-contact sample.
	Edge Trigger = iota
	// Level dispatches on every sample that reads contact, so a held press
	// dispatches repeatedly.
	Level
)

// DefaultThreshold is the minimum pressure that counts as contact. Sources
// report Z == 0 when untouched; hal.CalibratedTouch applies the panel threshold.
const DefaultThreshold = 1

// Handler handles one touch. It runs synchronously inside Step.
type Handler func(ctx context.Context, p touch.Point) error

// Options configures a Loop.
type Options struct {
	Trigger   Trigger
	Threshold int
}

// EdgeDetector reports rising edges of a contact signal.
type EdgeDetector struct {
	down bool
}

// Rising returns true when contact is true and the previous sample was not.
func (e *EdgeDetector) Rising(contact bool) bool {
	rising := contact && !e.down
	e.down = contact
	return rising
}

// Down reports the last sampled contact state.
func (e *EdgeDetector) Down() bool { return e.down }

// Loop polls a touch source.
type Loop struct {
	src     touch.Pointer
	handler Handler
	opts    Options

	state State
	edge  EdgeDetector

	dispatched uint64
}

// New returns a Loop in the Idle state.
func New(src touch.Pointer, h Handler, opts Options) *Loop {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	return &Loop{src: src, handler: h, opts: opts}
}

func (l *Loop) State() State { return l.state }

// Dispatched returns the number of handler calls so far.
func (l *Loop) Dispatched() uint64 { return l.dispatched }

// Contact reports whether p counts as a touch.
func (l *Loop) Contact(p touch.Point) bool { return p.Z >= l.opts.Threshold }

// Step samples the touchscreen once and, on a touch, runs the handler.
// It reports whether the handler ran.
func (l *Loop) Step(ctx context.Context) (bool, error) {
	if l.src == nil {
		return false, nil
	}

	p := l.src.ReadTouchPoint()
	contact := l.Contact(p)

	fire := contact
	if l.opts.Trigger == Edge {
		fire = l.edge.Rising(contact)
	} else {
		l.edge.Rising(contact)
	}
	if !fire {
		return false, nil
	}

	l.state = Handling
	l.dispatched++
	var err error
	if l.handler != nil {
		err = l.handler(ctx, p)
	}
	l.state = Idle
	return true, err
}
