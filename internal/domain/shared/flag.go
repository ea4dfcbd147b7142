package shared

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean that also accepts the 0/1 and "true"/"1" encodings the
// backend uses for is_active style columns.
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = false
		return nil
	}

	raw := strings.Trim(string(data), `"`)
	switch strings.ToLower(raw) {
	case "", "0", "false", "no", "off":
		*f = false
		return nil
	case "1", "true", "yes", "on":
		*f = true
		return nil
	}

	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = n != 0
		return nil
	}
	return fmt.Errorf("invalid boolean value %s", string(data))
}

func (f Flag) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatBool(bool(f))), nil
}

// Bool returns a *bool for optional query filters.
func Bool(b bool) *bool {
	return &b
}
