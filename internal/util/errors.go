package util

import "errors"

// Failure classes raised by the service layer. Controllers translate them to
// HTTP status codes with errors.Is, so services never touch gin directly.
var (
	// ErrValidation marks malformed or missing required input (400).
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a missing Test/User/Attempt reference (404).
	ErrNotFound = errors.New("resource not found")
	// ErrDependency marks an unreachable or inconsistent collaborator (500).
	ErrDependency = errors.New("dependency failure")

	ErrEmailRegistered    = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
)
