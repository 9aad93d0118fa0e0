package errors

import "errors"

var (
	// ErrInvalidEmail is returned when a login email matches no user.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrIncorrectPassword is returned when a login password does not match.
	ErrIncorrectPassword = errors.New("password is incorrect")
	// ErrDuplicateEmail is returned when the store rejects a non-unique email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned when an id or email resolves to no record.
	ErrNotFound = errors.New("record not found")
)

// Response is the JSON envelope every endpoint answers with: a success
// flag plus a human-readable message, or a list of messages for
// validation failures.
type Response struct {
	Success bool     `json:"success"`
	Msg     string   `json:"msg,omitempty"`
	Msgs    []string `json:"msgs,omitempty"`
}

// Fail builds a failure envelope with a single message.
func Fail(msg string) Response {
	return Response{Success: false, Msg: msg}
}

// FailAll builds a failure envelope with one message per violated rule.
func FailAll(msgs []string) Response {
	return Response{Success: false, Msgs: msgs}
}
