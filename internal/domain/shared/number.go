package shared

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ID is a record identifier. The backend sends some ids as strings ("12"),
// so both encodings are accepted.
type ID int64

// Count is a whole number such as a count, an installment number or minutes,
// accepted as a JSON number or a numeric string.
type Count int

func (id *ID) UnmarshalJSON(data []byte) error {
	n, err := parseWhole(data)
	if err != nil {
		return fmt.Errorf("invalid id %s: %w", string(data), err)
	}
	*id = ID(n)
	return nil
}

func (c *Count) UnmarshalJSON(data []byte) error {
	n, err := parseWhole(data)
	if err != nil {
		return fmt.Errorf("invalid count %s: %w", string(data), err)
	}
	*c = Count(n)
	return nil
}

// parseWhole reads 12, "12", 12.0 and "1,200". null and "" are zero.
func parseWhole(data []byte) (int64, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return 0, nil
	}

	raw := strings.TrimSpace(strings.Trim(string(data), `"`))
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if f != float64(int64(f)) {
		return 0, fmt.Errorf("%s is not a whole number", raw)
	}
	return int64(f), nil
}
