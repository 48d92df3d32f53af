package services

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken indicates the email already belongs to another user.
	ErrEmailTaken = errors.New("email already exists")

	// ErrLikeConflict indicates a concurrent toggle on the same (user,
	// restaurant) pair won the insert race; the caller should re-read state.
	ErrLikeConflict = errors.New("like was modified concurrently")
)
