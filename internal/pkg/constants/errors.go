package constants

import (
	"fmt"
	"net/http"
)

// CodedError is an error carrying the HTTP status it should be reported with.
type CodedError struct {
	msg  string
	code int
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

// NotFoundf builds a 404 error whose message names the missing identifier.
func NotFoundf(format string, args ...any) *CodedError {
	return &CodedError{msg: fmt.Sprintf(format, args...), code: http.StatusNotFound}
}

func BadRequestf(format string, args ...any) *CodedError {
	return &CodedError{msg: fmt.Sprintf(format, args...), code: http.StatusBadRequest}
}

var (
	ErrDBNotFound = NewCodedError("not found", http.StatusNotFound)
)
