// Package errs wraps sentinel error codes with contextual messages, the same
// pattern a flat pkg/util.go used before the codebase grew
// subpackages.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrCanceled is returned when a Search is aborted via the cancel flag
	// mid-pipeline.
	ErrCanceled = errors.New("search canceled")
	// ErrTileUnavailable marks a tile whose lease could not be acquired.
	ErrTileUnavailable = errors.New("tile unavailable")
	// ErrFeatureResolutionFailed marks a hit whose owning tile could not be found during promotion.
	ErrFeatureResolutionFailed = errors.New("feature resolution failed")
	// ErrMalformedTrie marks an invariant breach encountered while walking a trie.
	ErrMalformedTrie = errors.New("malformed trie")
	// ErrInvalidInput marks an empty query with no tokens and no prefix.
	ErrInvalidInput = errors.New("invalid input")
	// ErrBadParamInput is a generic "param not valid" sentinel.
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrNotFound is a generic not-found sentinel.
	ErrNotFound = errors.New("requested item is not found")
)

// Error pairs a sentinel code with a formatted message and, optionally, the
// original error that triggered it.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

func (e *Error) Code() error {
	return e.code
}

// Wrapf builds an *Error carrying code, formatted from format/a, wrapping orig.
func Wrapf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}
