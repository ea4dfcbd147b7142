package shift

import "errors"

var (
	ErrShiftNotFound           = errors.New("shift not found")
	ErrAssignmentNotFound      = errors.New("shift assignment not found")
	ErrAssignmentAlreadyEnded  = errors.New("shift assignment already ended")
	ErrEmployeeAlreadyAssigned = errors.New("employee already assigned to an active shift")
)
