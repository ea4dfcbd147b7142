package dashboard

import "errors"

var ErrInvalidMonth = errors.New("invalid month")
