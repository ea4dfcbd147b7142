package apiclient

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// Params are query parameters. Values may be scalars, pointers to scalars or
// slices; nil, nil pointers and blank strings are dropped so optional filters
// never reach the backend as empty values.
type Params map[string]any

// Values renders p as url.Values.
func (p Params) Values() url.Values {
	values := url.Values{}
	for key, raw := range p {
		v, ok := deref(raw)
		if !ok {
			continue
		}
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() != reflect.Uint8 {
			for i := 0; i < v.Len(); i++ {
				if s, ok := format(v.Index(i)); ok {
					values.Add(key+"[]", s)
				}
			}
			continue
		}
		if s, ok := format(v); ok {
			values.Set(key, s)
		}
	}
	return values
}

// Set stores value under key, ignoring empty values.
func (p Params) Set(key string, value any) Params {
	if _, ok := deref(value); ok {
		p[key] = value
	}
	return p
}

func deref(raw any) (reflect.Value, bool) {
	if raw == nil {
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(raw)
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.String && strings.TrimSpace(v.String()) == "" {
		return reflect.Value{}, false
	}
	return v, true
}

func format(v reflect.Value) (string, bool) {
	v, ok := deref(v.Interface())
	if !ok {
		return "", false
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		out := s.String()
		return out, strings.TrimSpace(out) != ""
	}
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()), true
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), true
	default:
		return fmt.Sprint(v.Interface()), true
	}
}
