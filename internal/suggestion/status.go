// Package suggestion implements the visitor suggestion flow: input
// validation, the submission state machine, and the relay that forwards
// accepted suggestions to the external processing endpoint.
package suggestion

// Status enumerates the submission states of a suggestion form.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSuccess
	StatusError
)

// String renders the status for logs and template class names.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Event enumerates the inputs that drive status transitions.
type Event int

const (
	// EventSubmit starts a submission with valid input.
	EventSubmit Event = iota
	// EventDelivered records a relay call that returned without a transport error.
	EventDelivered
	// EventFailed records a relay call that returned a transport error.
	EventFailed
	// EventReset returns the form to idle after the outcome display delay.
	EventReset
)

// Next is the pure transition function for the submission state machine.
//
// The only legal cycle is Idle -> Sending -> {Success, Error} -> Idle.
// Sending never returns to Idle directly and an in-flight submission cannot
// be cancelled. The second return reports whether the transition is legal;
// on an illegal transition the input status is returned unchanged.
func Next(status Status, event Event) (Status, bool) {
	switch event {
	case EventSubmit:
		if status == StatusIdle {
			return StatusSending, true
		}
	case EventDelivered:
		if status == StatusSending {
			return StatusSuccess, true
		}
	case EventFailed:
		if status == StatusSending {
			return StatusError, true
		}
	case EventReset:
		if status == StatusSuccess || status == StatusError {
			return StatusIdle, true
		}
	}
	return status, false
}
