package repository

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrCancelled        = errors.New("operation cancelled")
	ErrDisposed         = errors.New("store is closed")
	ErrPersistence      = errors.New("persistence error")
	ErrConfiguration    = errors.New("identity store configuration error")
	ErrRoleNotFound     = errors.New("role not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRolesUnavailable = errors.New("role store not configured")
)

// Result codes carried by failed update and delete results.
const (
	CodeUpdateError = "UpdateError"
	CodeDeleteError = "DeleteError"
)
