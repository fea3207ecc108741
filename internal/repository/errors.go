package repository

import "errors"

var (
	// ErrNotFound indicates the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName indicates a unique name is already taken.
	ErrDuplicateName = errors.New("name already in use")
)
