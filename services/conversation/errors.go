package conversation

import "fmt"

type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSessionNotFound is returned by stores when no session exists for an id.
var ErrSessionNotFound = &SessionError{
	Code:    "sessionNotFound",
	Message: "session not found",
}
