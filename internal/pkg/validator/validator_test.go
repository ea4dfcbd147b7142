package validator

import (
	"errors"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "2023/01/01", "01-01-2023", ""}
	for _, s := range valid {
		_, ok := IsValidDate(s)
		if !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		_, ok := IsValidDate(s)
		if ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"08:00", "23:59", "00:00:00", "17:30:15"}
	invalid := []string{"24:00", "8:00", "12:60", "noon", ""}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	if !IsValidMonth("2024-02") {
		t.Errorf("IsValidMonth(2024-02) = false, want true")
	}
	if IsValidMonth("2024-13") || IsValidMonth("02-2024") {
		t.Errorf("IsValidMonth accepted an invalid month")
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("a", slice) {
		t.Errorf("IsInSlice('a') = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Errorf("IsInSlice('d') = true, want false")
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1500000", "1500000"},
		{"1,500,000", "1500000"},
		{" 2 500 000 ", "2500000"},
		{"1,250.50", "1250.5"},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.input)
		if err != nil {
			t.Errorf("ParseAmount(%q) error = %v", c.input, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", c.input, got.String(), c.want)
		}
	}

	for _, bad := range []string{"", "  ", "abc", "12a"} {
		if _, err := ParseAmount(bad); !errors.Is(err, ErrNotANumber) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrNotANumber", bad, err)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"90", 90},
		{"1,200", 1200},
		{"1h30m", 90},
		{"45m", 45},
	}
	for _, c := range cases {
		got, err := ParseMinutes(c.input)
		if err != nil {
			t.Errorf("ParseMinutes(%q) error = %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
	if _, err := ParseMinutes("soon"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("ParseMinutes(soon) error = %v, want ErrNotANumber", err)
	}
}

func TestParseCount(t *testing.T) {
	got, err := ParseCount("1,2")
	if err != nil || got != 12 {
		t.Errorf("ParseCount(1,2) = %d, %v; want 12, nil", got, err)
	}
	if _, err := ParseCount("-3"); err == nil {
		t.Errorf("ParseCount(-3) error = nil, want error")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
	}
	got := errs.Error()
	want := "email: invalid; phone: required"
	if got != want {
		t.Errorf("ValidationErrors.Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "invalid"},
		{Field: "phone", Message: "required"},
		{Field: "email", Message: "second message is dropped"},
	}
	got := errs.ToMap()
	want := map[string]string{"email": "invalid", "phone": "required"}
	if len(got) != len(want) {
		t.Errorf("ValidationErrors.ToMap() length = %d, want %d", len(got), len(want))
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("ValidationErrors.ToMap()[%q] = %q, want %q", k, got[k], v)
		}
	}
}

func TestValidationErrors_Err(t *testing.T) {
	var errs ValidationErrors
	if errs.Err() != nil {
		t.Errorf("empty ValidationErrors.Err() = %v, want nil", errs.Err())
	}
	errs.Add("name", "name is required")
	var target ValidationErrors
	if !errors.As(errs.Err(), &target) || len(target) != 1 {
		t.Errorf("ValidationErrors.Err() did not return the field errors")
	}
}

type taggedForm struct {
	Name   string `json:"name" validate:"required,max=5"`
	Email  string `json:"email" validate:"omitempty,email"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

func TestStruct(t *testing.T) {
	if err := Struct(taggedForm{Name: "Box"}); err != nil {
		t.Fatalf("Struct(valid) error = %v", err)
	}

	err := Struct(taggedForm{Name: "Too long name", Email: "nope", Status: "gone"})
	var errs ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("Struct(invalid) error = %v, want ValidationErrors", err)
	}
	got := errs.ToMap()
	if got["name"] != "name must not exceed 5 characters" {
		t.Errorf("name message = %q", got["name"])
	}
	if got["email"] != "email must be a valid email address" {
		t.Errorf("email message = %q", got["email"])
	}
	if got["status"] != "status must be one of: active, inactive" {
		t.Errorf("status message = %q", got["status"])
	}

	err = Struct(taggedForm{})
	if !errors.As(err, &errs) || errs.ToMap()["name"] != "name is required" {
		t.Errorf("Struct(empty) error = %v, want name is required", err)
	}
}
