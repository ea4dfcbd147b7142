package unit

import "errors"

var (
	ErrUnitNotFound = errors.New("unit not found")
	ErrUnitInUse    = errors.New("unit still has products")
)
