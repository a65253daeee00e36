package application

import "errors"

var (
	// ErrInvalidArticle signals the submission referenced an article that is
	// not in the catalog. Business rejection, not a system error.
	ErrInvalidArticle = errors.New("order references an unknown article")
	// ErrIllegalTransition signals the requested status change is not
	// permitted by the order lifecycle.
	ErrIllegalTransition = errors.New("order status transition not allowed")
)
