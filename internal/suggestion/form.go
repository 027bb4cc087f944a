package suggestion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/brightfieldschool/site/internal/platform/timeouts"
)

// ErrInvalidInput reports a submit attempt whose input failed the
// validation preconditions. No relay call is made.
var ErrInvalidInput = errors.New("suggestion: invalid input")

// ErrBusy reports a submit attempt while another submission is in flight.
var ErrBusy = errors.New("suggestion: submission in flight")

// ErrClosed reports an operation on a form whose owner has been torn down.
var ErrClosed = errors.New("suggestion: form closed")

// Submitter forwards an accepted suggestion to the processing endpoint.
type Submitter interface {
	Submit(ctx context.Context, email, message string) error
}

// State is a point-in-time copy of a form's visitor-facing state.
type State struct {
	Email      string
	Message    string
	EmailValid bool
	Status     Status
}

// Config configures a Form.
type Config struct {
	Submitter Submitter

	// SuccessReset and ErrorReset override the outcome display delays.
	// Zero values fall back to the shared timeout constants.
	SuccessReset time.Duration
	ErrorReset   time.Duration
}

// Form owns one visitor's suggestion input and drives the submission state
// machine. All methods are safe for concurrent use; the reset timer fires on
// its own goroutine.
type Form struct {
	mu         sync.Mutex
	email      string
	message    string
	emailValid bool
	status     Status
	closed     bool

	submitter    Submitter
	successReset time.Duration
	errorReset   time.Duration
	resetTimer   *time.Timer
}

// NewForm builds an idle form.
func NewForm(cfg Config) (*Form, error) {
	if cfg.Submitter == nil {
		return nil, errors.New("suggestion: submitter is required")
	}
	if cfg.SuccessReset <= 0 {
		cfg.SuccessReset = timeouts.SuggestionSuccessReset
	}
	if cfg.ErrorReset <= 0 {
		cfg.ErrorReset = timeouts.SuggestionErrorReset
	}
	return &Form{
		emailValid:   true,
		status:       StatusIdle,
		submitter:    cfg.Submitter,
		successReset: cfg.SuccessReset,
		errorReset:   cfg.ErrorReset,
	}, nil
}

// UpdateEmail stores the raw address and recomputes validity. An empty field
// counts as provisionally valid so no error shows while the visitor types.
func (f *Form) UpdateEmail(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.email = value
	f.emailValid = AcceptableEmailInput(value)
}

// UpdateMessage stores the raw message verbatim.
func (f *Form) UpdateMessage(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.message = value
}

// Submit validates the current input and, when it passes, relays the
// suggestion. The call blocks for the duration of the relay request; the
// form reports StatusSending for that window. Any submit while the form is
// not idle, whether mid-flight or during an outcome display window, is
// rejected with ErrBusy so every relay call rides a legal Idle -> Sending
// transition. The outcome status holds until the reset timer returns the
// form to idle.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return ErrClosed
	}
	if f.status != StatusIdle {
		f.mu.Unlock()
		return ErrBusy
	}
	if !ValidEmail(f.email) {
		f.emailValid = false
		f.mu.Unlock()
		return ErrInvalidInput
	}
	if !AcceptableMessage(f.message) {
		f.mu.Unlock()
		return ErrInvalidInput
	}
	email, message := f.email, f.message
	f.status, _ = Next(f.status, EventSubmit)
	f.mu.Unlock()

	err := f.submitter.Submit(ctx, email, message)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}
	if err != nil {
		f.status, _ = Next(f.status, EventFailed)
		f.scheduleResetLocked(f.errorReset, false)
		return fmt.Errorf("relay suggestion: %w", err)
	}
	f.status, _ = Next(f.status, EventDelivered)
	f.scheduleResetLocked(f.successReset, true)
	return nil
}

// Snapshot returns a copy of the current visitor-facing state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return State{
		Email:      f.email,
		Message:    f.message,
		EmailValid: f.emailValid,
		Status:     f.status,
	}
}

// Close tears the form down and releases any pending reset timer. A reset
// scheduled before Close never mutates state afterwards.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

// scheduleResetLocked arms the idle reset after an outcome. The success path
// clears both fields; the error path keeps them so the visitor can retry.
// Callers must hold f.mu.
func (f *Form) scheduleResetLocked(delay time.Duration, clearFields bool) {
	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetTimer = time.AfterFunc(delay, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.closed {
			return
		}
		next, ok := Next(f.status, EventReset)
		if !ok {
			return
		}
		f.status = next
		if clearFields {
			f.email = ""
			f.message = ""
			f.emailValid = true
		}
	})
}
