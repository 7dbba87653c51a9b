package flatscan

import (
	"errors"
	"fmt"
)

// Error codes classify failures for callers. Machine-readable; the message
// carries the human-readable detail (offending fragment or value).
const (
	ESYNTAX      = "syntax"       // grammar could not align the document
	ECONVERSION  = "conversion"   // captured fragment is not numeric
	EDOMAIN      = "domain"       // value outside a closed enumeration
	EINVALID     = "invalid"      // malformed input or link shape
	ENOTFOUND    = "not_found"    // requested entity does not exist
	EUNAVAILABLE = "unavailable"  // collaborator (network, disk) failure
	EINTERNAL    = "internal"     // unexpected internal error
)

// Error is an application error with a machine-readable code.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("flatscan error: code=%s message=%s", e.Code, e.Message)
}

// Errorf constructs an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of an error, EINTERNAL for non-application
// errors, and the empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of an error, a generic message for
// non-application errors, and the empty string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
