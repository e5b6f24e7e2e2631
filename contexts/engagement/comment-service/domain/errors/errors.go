package errors

import "errors"

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrPostNotFound    = errors.New("referenced post not found")
	ErrUserNotFound    = errors.New("referenced user not found")
	ErrNoFields        = errors.New("no fields to update")

	// ErrForbidden is declared so the currently open mutation policy can
	// be tightened in the application layer alone.
	ErrForbidden = errors.New("caller is not allowed to perform this action")
)
