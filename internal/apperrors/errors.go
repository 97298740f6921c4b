package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidCredentials indicates that a login attempt was rejected by the authenticator.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized indicates that the caller has no active session.
var ErrUnauthorized = errors.New("unauthorized")
