package quiz

import (
	"context"
	"sync"
	"time"

	"github.com/golang/glog"
)

// SubmitStatus is the coarse state of the outbound submission.
type SubmitStatus int

const (
	SubmitIdle SubmitStatus = iota
	SubmitPending
	SubmitOK
	SubmitFailed
)

func (s SubmitStatus) String() string {
	switch s {
	case SubmitIdle:
		return "idle"
	case SubmitPending:
		return "submitting"
	case SubmitOK:
		return "success"
	case SubmitFailed:
		return "error"
	default:
		return "unknown"
	}
}

// SubmitResult is what the presentation layer renders; Reason is set only on failure.
type SubmitResult struct {
	Status SubmitStatus `json:"-"`
	Reason string       `json:"reason,omitempty"`
}

// SendFunc delivers a payload to the collection endpoint.
type SendFunc[P any] func(ctx context.Context, payload P) error

// Submitter sends at most one payload per session, in the background. A failed
// send is logged and reported through Result; it is never retried.
type Submitter[P any] struct {
	send    SendFunc[P]
	timeout time.Duration
	notify  func(SubmitResult)

	mu      sync.Mutex
	session string
	result  SubmitResult
	done    chan struct{}
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*submitterOptions)

type submitterOptions struct {
	timeout time.Duration
	notify  func(SubmitResult)
}

// WithTimeout bounds each send. Zero means no bound.
func WithTimeout(d time.Duration) SubmitterOption {
	return func(o *submitterOptions) { o.timeout = d }
}

// WithNotify registers a callback invoked from the sending goroutine once a send completes.
func WithNotify(fn func(SubmitResult)) SubmitterOption {
	return func(o *submitterOptions) { o.notify = fn }
}

// NewSubmitter wraps send. A nil send makes every submission a no-op that stays Idle.
func NewSubmitter[P any](send SendFunc[P], opts ...SubmitterOption) *Submitter[P] {
	o := submitterOptions{timeout: 10 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}
	return &Submitter[P]{send: send, timeout: o.timeout, notify: o.notify}
}

// Submit starts sending payload for sessionID unless that session was already
// submitted. It never blocks on the send and reports whether a send started.
func (s *Submitter[P]) Submit(sessionID string, payload P) bool {
	if s.send == nil || sessionID == "" {
		return false
	}

	s.mu.Lock()
	if s.session == sessionID {
		s.mu.Unlock()
		return false
	}
	s.session = sessionID
	s.result = SubmitResult{Status: SubmitPending}
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	go s.run(sessionID, payload, done)
	return true
}

func (s *Submitter[P]) run(sessionID string, payload P, done chan struct{}) {
	defer close(done)

	// Detached from any caller context: leaving the page does not cancel a submission.
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result := SubmitResult{Status: SubmitOK}
	if err := s.send(ctx, payload); err != nil {
		glog.Errorf("submit responses for session %s: %v", sessionID, err)
		result = SubmitResult{Status: SubmitFailed, Reason: err.Error()}
	}

	s.mu.Lock()
	// A newer session may have started while this send was in flight.
	if s.session == sessionID {
		s.result = result
	}
	s.mu.Unlock()

	if s.notify != nil {
		s.notify(result)
	}
}

// Result reports the state of the latest submission.
func (s *Submitter[P]) Result() SubmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Reset forgets the last session so the indicator returns to Idle. An in-flight
// send keeps running but no longer updates Result.
func (s *Submitter[P]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = ""
	s.result = SubmitResult{}
	s.done = nil
}

// Wait blocks until the latest send finishes or ctx is done.
func (s *Submitter[P]) Wait(ctx context.Context) SubmitResult {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}
	return s.Result()
}
