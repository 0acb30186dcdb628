// Package quiz implements the sequenced-item quiz engine shared by the crime and
// status quizzes. A Machine never holds session state: every transition takes a
// State value and returns the next one, so a State can be inspected, copied or
// replayed without side effects.
package quiz

import (
	"slices"

	"github.com/google/uuid"
)

// Phase is the coarse position of a session in its lifecycle.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Finished
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not_started"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// State is one snapshot of a quiz session. C is the pending choice type, R the
// finalized history record type.
type State[C, R any] struct {
	Phase     Phase
	SessionID string
	Index     int
	Revealed  bool
	Pending   C
	History   []R
}

// Rules parameterize the engine for one quiz.
type Rules[I, C, R any] interface {
	// CanSubmit reports whether the pending choice is complete enough to reveal feedback.
	CanSubmit(choice C) bool
	// CanAdvance reports whether the revealed item may be finalized.
	CanAdvance(choice C) bool
	// Finalize turns the pending choice into an immutable history record.
	Finalize(item I, choice C) R
}

// Machine sequences a fixed content table through the quiz lifecycle.
type Machine[I, C, R any] struct {
	items []I
	rules Rules[I, C, R]
	newID func() string
}

// Option configures a Machine.
type Option func(*machineOptions)

type machineOptions struct {
	newID func() string
}

// WithSessionIDs overrides session id generation (tests).
func WithSessionIDs(fn func() string) Option {
	return func(o *machineOptions) { o.newID = fn }
}

// NewMachine builds a machine over items. The slice is copied.
func NewMachine[I, C, R any](items []I, rules Rules[I, C, R], opts ...Option) *Machine[I, C, R] {
	o := machineOptions{newID: NewSessionID}
	for _, opt := range opts {
		opt(&o)
	}
	return &Machine[I, C, R]{
		items: slices.Clone(items),
		rules: rules,
		newID: o.newID,
	}
}

// NewSessionID returns a random (version 4) UUID string.
func NewSessionID() string {
	return uuid.NewString()
}

// Len is the number of content items.
func (m *Machine[I, C, R]) Len() int { return len(m.items) }

// Item returns the item at the state's index while the session is in progress.
func (m *Machine[I, C, R]) Item(s State[C, R]) (I, bool) {
	var zero I
	if s.Phase != InProgress || s.Index < 0 || s.Index >= len(m.items) {
		return zero, false
	}
	return m.items[s.Index], true
}

// Start begins a new session with a fresh identifier and empty history.
func (m *Machine[I, C, R]) Start() State[C, R] {
	if len(m.items) == 0 {
		return State[C, R]{Phase: Finished, SessionID: m.newID()}
	}
	return State[C, R]{Phase: InProgress, SessionID: m.newID()}
}

// Restart abandons s and starts over; it is equivalent to Start.
func (m *Machine[I, C, R]) Restart(_ State[C, R]) State[C, R] {
	return m.Start()
}

// Select replaces the pending choice with update(pending). No-op once revealed.
func (m *Machine[I, C, R]) Select(s State[C, R], update func(C) C) State[C, R] {
	if s.Phase != InProgress || s.Revealed {
		return s
	}
	s.Pending = update(s.Pending)
	return s
}

// Submit reveals feedback for the current item when the pending choice allows it.
func (m *Machine[I, C, R]) Submit(s State[C, R]) State[C, R] {
	if s.Phase != InProgress || s.Revealed || !m.rules.CanSubmit(s.Pending) {
		return s
	}
	s.Revealed = true
	return s
}

// Annotate edits the pending choice after feedback is revealed (e.g. an unscored opinion).
func (m *Machine[I, C, R]) Annotate(s State[C, R], update func(C) C) State[C, R] {
	if s.Phase != InProgress || !s.Revealed {
		return s
	}
	s.Pending = update(s.Pending)
	return s
}

// Advance finalizes the revealed item and moves to the next one, or finishes.
func (m *Machine[I, C, R]) Advance(s State[C, R]) State[C, R] {
	if s.Phase != InProgress || !s.Revealed || !m.rules.CanAdvance(s.Pending) {
		return s
	}
	item := m.items[s.Index]
	// Clip forces a fresh backing array so earlier snapshots never see the append.
	s.History = append(slices.Clip(s.History), m.rules.Finalize(item, s.Pending))

	var zero C
	s.Pending = zero
	s.Revealed = false
	if s.Index >= len(m.items)-1 {
		s.Phase = Finished
		return s
	}
	s.Index++
	return s
}
