package overtime

import "errors"

var (
	ErrOvertimeNotFound    = errors.New("overtime record not found")
	ErrOvertimeNotPending  = errors.New("overtime record is no longer pending")
	ErrOvertimeNotApproved = errors.New("overtime record must be approved before it is paid")
)
