package fsops

import (
	"errors"
	"fmt"
)

// Kind classifies an engine failure
type Kind string

const (
	KindNotFound            Kind = "NotFound"
	KindNotADirectory       Kind = "NotADirectory"
	KindAlreadyExists       Kind = "AlreadyExists"
	KindNoParent            Kind = "NoParent"
	KindNoFileName          Kind = "NoFileName"
	KindInvalidArgument     Kind = "InvalidArgument"
	KindReadFailure         Kind = "ReadFailure"
	KindWriteFailure        Kind = "WriteFailure"
	KindCopyFailure         Kind = "CopyFailure"
	KindDeleteFailure       Kind = "DeleteFailure"
	KindRenameFailure       Kind = "RenameFailure"
	KindCreateFailure       Kind = "CreateFailure"
	KindCleanupFailure      Kind = "CleanupFailure"
	KindLaunchFailure       Kind = "LaunchFailure"
	KindUnsupportedPlatform Kind = "UnsupportedPlatform"
)

// Error is the error type returned by every engine operation.
// Msg is the human-readable text shown to the user; Err is the underlying OS error, if any.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Msg  string
	Err  error
}

// Error renders the user-facing message. Precondition kinds carry a complete
// message; OS failures append the underlying error.
func (e *Error) Error() string {
	if e.Err == nil || e.precondition() {
		return e.Msg
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) precondition() bool {
	switch e.Kind {
	case KindNotFound, KindNotADirectory, KindAlreadyExists, KindNoParent, KindNoFileName:
		return true
	}
	return false
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds an *Error with a formatted message and no cause
func newError(kind Kind, op, path, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Msg: fmt.Sprintf(format, args...)}
}

// wrapError builds an *Error around an OS error
func wrapError(kind Kind, op, path, msg string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Msg: msg, Err: err}
}

// NewError exposes error construction to collaborators that report in the
// engine's taxonomy (launchers, providers).
func NewError(kind Kind, op, path, msg string, err error) *Error {
	return wrapError(kind, op, path, msg, err)
}

// KindOf returns the Kind of err, or "" when err is not an engine error
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an engine error of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// PhaseOf returns the phase (Op) recorded on an engine error
func PhaseOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Op
	}
	return ""
}
