package usecase

import "errors"

// Sentinel errors for the use case layer. The HTTP controller maps these to
// status codes.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two cases are not distinguishable from outside
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated indicates the caller's identity could not be
	// resolved
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrEmailTaken indicates a registration attempt with an existing email
	ErrEmailTaken = errors.New("user already exists with this email")

	// ErrAlreadySubmitted indicates a second daily log on the same calendar
	// day
	ErrAlreadySubmitted = errors.New("a daily log for today has already been submitted")

	// ErrLogNotFound indicates a comment target that does not exist
	ErrLogNotFound = errors.New("daily log not found")
)
