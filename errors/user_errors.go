// api/errors/user_errors.go
package errors

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrUserConflict       = errors.New("user conflict")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrRoleNotFound = errors.New("role not found")
)
