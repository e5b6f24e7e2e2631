package errors

import "errors"

var (
	ErrUnauthenticated  = errors.New("authentication required")
	ErrForbidden        = errors.New("caller is not allowed to perform this action")
	ErrAccountSuspended = errors.New("account is suspended")
	ErrPostNotFound     = errors.New("post not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAuthorNotFound   = errors.New("author account not found")
	ErrNoFields         = errors.New("no fields to update")
)
