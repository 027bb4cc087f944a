package suggestion

import (
	"regexp"
	"strings"
)

// minMessageLength is the exclusive lower bound for a trimmed suggestion
// message. Messages of this length or shorter are rejected before any
// relay call.
const minMessageLength = 10

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// ValidEmail reports whether value matches the full address pattern.
// Empty input is not a valid address; callers that want the provisional
// empty-field behavior should check for it separately.
func ValidEmail(value string) bool {
	return emailPattern.MatchString(value)
}

// AcceptableEmailInput reports whether value should display as valid while
// the visitor is still typing. An empty field shows no error but still
// blocks submission downstream.
func AcceptableEmailInput(value string) bool {
	return value == "" || ValidEmail(value)
}

// AcceptableMessage reports whether the trimmed message is long enough to
// submit.
func AcceptableMessage(value string) bool {
	return len(strings.TrimSpace(value)) > minMessageLength
}
