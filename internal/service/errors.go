package service

import "errors"

// Sentinel errors the handlers map onto status codes. Login failures and
// not-owned posts are deliberately undifferentiated so responses leak
// nothing about what exists.
var (
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrImageRequired      = errors.New("image is required")
	ErrInvalidVibeRating  = errors.New("vibe rating must be between 0 and 5")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrSelfFriendship     = errors.New("cannot follow yourself")
)
