package loan

import "errors"

var (
	ErrLoanNotFound   = errors.New("salary advance not found")
	ErrLoanNotPending = errors.New("salary advance is no longer pending")
)
