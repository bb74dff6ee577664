// Package errors provides sentinel errors and custom error types for the refspec tool.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrRemoteNotFound indicates that a remote is not configured in the repository
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrNoRefSpecs indicates that a remote has no refspecs for the requested operation
	ErrNoRefSpecs = errors.New("no refspecs configured")

	// ErrInvalidConfigValue indicates a config key was set to a value it does not accept
	ErrInvalidConfigValue = errors.New("invalid config value")

	// ErrNotARepository indicates that a command needing a repository ran outside one
	ErrNotARepository = errors.New("not a git repository")
)

// RemoteNotFoundError represents an error when a remote is not configured
type RemoteNotFoundError struct {
	RemoteName string
}

func (e *RemoteNotFoundError) Error() string {
	return fmt.Sprintf("remote %s does not exist", e.RemoteName)
}

// Is returns true if the target error is ErrRemoteNotFound
func (e *RemoteNotFoundError) Is(target error) bool {
	return target == ErrRemoteNotFound
}

// NewRemoteNotFoundError creates a new RemoteNotFoundError
func NewRemoteNotFoundError(remoteName string) *RemoteNotFoundError {
	return &RemoteNotFoundError{RemoteName: remoteName}
}

// RefSpecError ties a refspec failure to where the refspec came from
type RefSpecError struct {
	Origin  string
	RefSpec string
	Err     error
}

func (e *RefSpecError) Error() string {
	if e.Origin != "" {
		return fmt.Sprintf("%s: refspec %q: %v", e.Origin, e.RefSpec, e.Err)
	}
	return fmt.Sprintf("refspec %q: %v", e.RefSpec, e.Err)
}

func (e *RefSpecError) Unwrap() error {
	return e.Err
}

// NewRefSpecError creates a new RefSpecError
func NewRefSpecError(origin, refSpec string, err error) *RefSpecError {
	return &RefSpecError{
		Origin:  origin,
		RefSpec: refSpec,
		Err:     err,
	}
}

// InvalidConfigValueError represents a config key set to an unsupported value
type InvalidConfigValueError struct {
	Key   string
	Value string
}

func (e *InvalidConfigValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Key)
}

// Is returns true if the target error is ErrInvalidConfigValue
func (e *InvalidConfigValueError) Is(target error) bool {
	return target == ErrInvalidConfigValue
}

// NewInvalidConfigValueError creates a new InvalidConfigValueError
func NewInvalidConfigValueError(key, value string) *InvalidConfigValueError {
	return &InvalidConfigValueError{Key: key, Value: value}
}
