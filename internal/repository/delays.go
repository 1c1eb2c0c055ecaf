package repository

import "time"

// Delays configures the simulated per-operation latency of a store, standing
// in for the cost of a remote endpoint. The zero value disables all delays,
// which is what tests want.
type Delays struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
	Filter time.Duration
}

// ClientDelays returns the default latency profile for the client store.
func ClientDelays() Delays {
	return Delays{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 300 * time.Millisecond,
		Delete: 250 * time.Millisecond,
	}
}

// ProjectDelays returns the default latency profile for the project store.
// The profiles differ per entity to mimic heterogeneous endpoint cost.
func ProjectDelays() Delays {
	return Delays{
		List:   350 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 450 * time.Millisecond,
		Update: 300 * time.Millisecond,
		Delete: 250 * time.Millisecond,
		Filter: 200 * time.Millisecond,
	}
}

// MeetingDelays returns the default latency profile for the meeting store.
func MeetingDelays() Delays {
	return Delays{
		List:   250 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 300 * time.Millisecond,
		Delete: 250 * time.Millisecond,
		Filter: 200 * time.Millisecond,
	}
}

// Pause blocks for d. Operations run to completion once issued; mid-flight
// cancellation is deliberately unsupported, so no context is consulted.
func Pause(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
