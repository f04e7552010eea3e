package model

import (
	"errors"
	"fmt"
)

// Storage-level sentinels. Repositories translate driver errors into
// these so the usecase layer never inspects sql or pq types directly.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate entry")
)

// RuleError is a business-rule violation. Its message is written for
// the client and is safe to return verbatim in a 400 response; every
// other error surfaces as a generic 500.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func Rule(format string, args ...any) *RuleError {
	return &RuleError{Message: fmt.Sprintf(format, args...)}
}
