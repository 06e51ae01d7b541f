package usecases

import "errors"

var (
	ErrEmailRequired      = errors.New("user must have an email address")
	ErrTitleRequired      = errors.New("recipe must have a title")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("not found")
)
