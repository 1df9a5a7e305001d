package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSolveStart  EventType = "solve_start"
	EventSolveFinish EventType = "solve_finish"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Key       string    `json:"key"` // Digest of the normalized request
}

// SolveEvent describes a solve invocation.
// Status, Iterations, Duration and Err are only set on EventSolveFinish.
type SolveEvent struct {
	EventBase
	Method     Method        `json:"method"`
	Status     Status        `json:"status,omitempty"`
	Iterations int           `json:"iterations,omitempty"`
	Duration   time.Duration `json:"duration,omitempty"`
	Cached     bool          `json:"cached,omitempty"`
	Err        error         `json:"-"`
}

// LifecycleHooks defines callbacks for solver observability.
type LifecycleHooks struct {
	OnSolveStart  func(context.Context, *SolveEvent)
	OnSolveFinish func(context.Context, *SolveEvent)
}
