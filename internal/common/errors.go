// Package common defines shared constants and sentinel errors used across
// glitterpage layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation no-ops. Services return these alongside an unchanged value.
	ErrEmptyInput    = errors.New("empty input")
	ErrDuplicateName = errors.New("duplicate name")
	ErrUnknownEffect = errors.New("unknown picture effect")

	// Ordering errors.
	ErrNoActiveDrag    = errors.New("no drag in progress")
	ErrIndexOutOfRange = errors.New("index out of range")

	// Conversation errors.
	ErrBusy = errors.New("request already in progress")

	// External collaborator errors.
	ErrNoCredential = errors.New("no api key configured")
)
