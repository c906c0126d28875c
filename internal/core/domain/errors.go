package domain

import "errors"

var (
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already registered")

	// ErrInvalidCredentials covers both unknown-user and wrong-password login
	// failures so callers cannot tell which one occurred.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is the single outcome for every token verification
	// failure: bad signature, malformed token, expired, missing subject,
	// or a subject that no longer resolves to a user.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrUserNotFound is a repository-level sentinel; the auth service folds
	// it into ErrInvalidCredentials or ErrUnauthorized before it reaches a handler.
	ErrUserNotFound = errors.New("user not found")

	// ErrSpellingErrors rejects note content flagged by the spelling service.
	ErrSpellingErrors = errors.New("spelling errors found")

	// ErrSpellerUnavailable means the spelling service could not be reached;
	// note creation fails closed.
	ErrSpellerUnavailable = errors.New("spelling service unavailable")
)
