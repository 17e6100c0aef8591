package services

import "errors"

// Task errors
var (
	ErrTaskNotFound     = errors.New("task: not found")
	ErrTaskInvalidInput = errors.New("task: invalid input")
	ErrTaskTitleMissing = errors.New("task: title is required")
)

// Search errors
var (
	ErrSearchTermRequired = errors.New("search: search term is required")
	ErrNoTasksMatched     = errors.New("search: no tasks matched the search term")
)

// Storage errors
var (
	ErrPersistenceFailed = errors.New("storage: operation failed")
)
