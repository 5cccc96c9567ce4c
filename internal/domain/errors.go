package domain

import "errors"

var (
	// ErrSessionNotFound is returned when a user has no active quiz session.
	ErrSessionNotFound = errors.New("quiz session not found")
	// ErrGenreNotFound indicates the genre has no questions (or does not exist).
	ErrGenreNotFound = errors.New("genre not found")
	// ErrQuestionNotFound indicates a question ID is unknown to storage.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUserNotFound indicates no stored user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when registering an address that already exists.
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so responses leak nothing about which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned for malformed, forged, or expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrAdminOnly is returned when a non-admin reaches an admin operation.
	ErrAdminOnly = errors.New("admin privileges required")
)
