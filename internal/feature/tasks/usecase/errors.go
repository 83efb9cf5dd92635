package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when a task does not exist or belongs to a
	// different owner. Both cases are deliberately indistinguishable so that
	// the existence of other users' tasks is never leaked.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned when a task is created with an empty title.
	ErrEmptyTitle = errors.New("title must not be empty")
)
