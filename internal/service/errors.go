package service

import "errors"

var (
	// ErrVersionIsNotSpecified is returned when the app version is empty.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNilDependency is returned by constructors given a nil collaborator.
	ErrNilDependency = errors.New("required dependency is nil")
)
