package shared

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cmlabs-hris/hris-mobile-go/internal/pkg/validator"
)

// NumberInput is a numeric form value as typed by the user. Both JSON
// numbers and strings such as "1,500,000" are accepted; parsing happens
// during validation.
type NumberInput string

func (n *NumberInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberInput(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*n = NumberInput(num.String())
	return nil
}

func (n NumberInput) IsEmpty() bool {
	return strings.TrimSpace(string(n)) == ""
}

// ReasonRequest carries the reason for a reject action.
type ReasonRequest struct {
	ID     int64  `json:"-"`
	Reason string `json:"reason" validate:"max=500"`
}

func (r *ReasonRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs.Add("id", "id is required")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	if r.Reason == "" {
		errs.Add("reason", "reason is required")
	}

	validator.StructInto(r, &errs)

	return errs.Err()
}
