package application

import "errors"

var (
	// ErrEmailTaken signals a sign-up with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrBadEmailSyntax signals a sign-up with a malformed email address.
	ErrBadEmailSyntax = errors.New("malformed email address")
)
