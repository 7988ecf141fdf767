package repository

import "errors"

// Store-level failure sentinels. The underlying driver error is logged at the
// call site; callers only see which operation failed.
var (
	ErrFailedToInsert = errors.New("failed to insert todo")
	ErrFailedToGet    = errors.New("failed to get todo")
	ErrFailedToList   = errors.New("failed to list todos")
	ErrFailedToUpdate = errors.New("failed to update todo")
	ErrFailedToDelete = errors.New("failed to delete todo")
	ErrFailedToMark   = errors.New("failed to mark todos notified")
)
