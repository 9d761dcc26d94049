package service

import "errors"

// Validation errors returned before any state is touched.
var (
	ErrEmptyItemName   = errors.New("inventory name is required")
	ErrNoPhotoProvided = errors.New("photo file is required")
)
