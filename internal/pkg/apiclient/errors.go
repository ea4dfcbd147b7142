package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/tidwall/gjson"
)

// GenericMessage is shown when a failure carries no usable message.
const GenericMessage = "Something went wrong. Please try again."

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Message    string
	Details    map[string]string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("upstream error [%d]: %s", e.StatusCode, e.Message)
}

var messagePaths = []string{"message", "error.message", "error", "msg", "error.description"}

func newError(status int, body []byte) *Error {
	e := &Error{StatusCode: status}
	if !gjson.ValidBytes(body) {
		return e
	}
	root := gjson.ParseBytes(body)

	for _, p := range messagePaths {
		v := root.Get(p)
		if v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
			e.Message = v.Str
			break
		}
	}

	// Laravel style {"errors":{"field":["msg"]}} or {"error":{"details":{"field":"msg"}}}
	for _, p := range []string{"errors", "error.details"} {
		obj := root.Get(p)
		if !obj.IsObject() {
			continue
		}
		details := make(map[string]string)
		obj.ForEach(func(key, value gjson.Result) bool {
			switch {
			case value.IsArray():
				if first := value.Get("0"); first.Type == gjson.String {
					details[key.String()] = first.Str
				}
			case value.Type == gjson.String:
				details[key.String()] = value.Str
			}
			return true
		})
		if len(details) > 0 {
			e.Details = details
			break
		}
	}
	return e
}

// StatusCode returns the upstream status of err, or 0 when err is not an
// upstream response error.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// UserMessage converts err into the text shown to the user. Failures without
// a message fall back to GenericMessage.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return GenericMessage
	}

	if errors.Is(err, context.Canceled) {
		return "Request was cancelled."
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "The server took too long to respond. Please try again."
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return "Unable to reach the server. Please check your connection."
	}
	return GenericMessage
}
