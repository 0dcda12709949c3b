package constants

import "net/http"

// CodedError carries the HTTP status the API error handler should respond
// with. Handlers and services return plain wrapped errors; the outermost
// CodedError in the chain decides the status code.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrInvalidToken      = NewCodedError("invalid auth token", http.StatusUnauthorized)
	ErrBadRequest        = NewCodedError("bad request", http.StatusBadRequest)
	ErrRateLimited       = NewCodedError("rate limit exceeded", http.StatusTooManyRequests)
)
