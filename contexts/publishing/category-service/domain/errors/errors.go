package errors

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameTaken        = errors.New("category name is already in use")
	ErrCategoryInUse    = errors.New("category is referenced by posts")

	// ErrForbidden is declared so the currently open mutation policy can
	// be tightened in the application layer alone.
	ErrForbidden = errors.New("caller is not allowed to perform this action")
)
