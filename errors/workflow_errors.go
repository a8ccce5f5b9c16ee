// api/errors/workflow_errors.go
package errors

import "errors"

// Workflow errors. All of them are deterministic policy or state violations
// and must not be retried.
var (
	ErrNotAuthorized    = errors.New("actor is not authorized for this action")
	ErrInvalidState     = errors.New("transition is not valid from the current status")
	ErrDuplicateBinding = errors.New("a binding for this user and house already exists")
	ErrExpired          = errors.New("outside the validity window")

	ErrInvalidRemark = errors.New("remark must be at least 5 characters")
	ErrAlreadyRated  = errors.New("work order has already been rated")
)
