// Package errors provides structured error types for the troc application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindAuth
	KindNotFound
	KindValidation
	KindConfig
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network error"
	case KindAuth:
		return "authentication error"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation error"
	case KindConfig:
		return "configuration error"
	case KindIO:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for troc.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns a short human-readable message for surfacing the error
// in the UI. Auth errors point the user at re-login since the client never
// refreshes credentials itself.
func UserMessage(err error) string {
	switch GetKind(err) {
	case KindNetwork:
		return "Connection failed - check your network and retry"
	case KindAuth:
		return "Session expired - run 'troc login' to sign in again"
	case KindNotFound:
		return "Conversation no longer exists"
	case KindValidation:
		return "Message cannot be empty"
	case KindConfig:
		return "Configuration problem - check ~/.troc/config.json"
	default:
		return "Something went wrong - try again"
	}
}

// API errors
func APIRequestFailed(op Op, err error) error {
	return E(op, KindNetwork, err)
}

func APIUnauthorized(op Op) error {
	return E(op, KindAuth, "credentials rejected by backend")
}

func APINotFound(op Op, id string) error {
	return E(op, KindNotFound, fmt.Sprintf("conversation %s not found or inaccessible", id))
}

func APIStatus(op Op, status int) error {
	return E(op, KindNetwork, fmt.Sprintf("backend returned status %d", status))
}

// Validation errors
func EmptyMessage() error {
	return E(Op("composer.Consume"), KindValidation, "message content is empty after trimming")
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindConfig, reason)
}

// Auth errors
func TokenMissing() error {
	return E(Op("config.Token"), KindAuth, "no API token configured - run 'troc login'")
}

func TokenExpired() error {
	return E(Op("config.Token"), KindAuth, "API token has expired - run 'troc login'")
}
