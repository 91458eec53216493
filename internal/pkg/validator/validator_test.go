package validator

import (
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"9876543210", true},
		{"+919876543210", true},
		{"98765 43210", true},
		{"98-76-54-32-10", true},
		{"12345", false},
		{"not-a-phone", false},
		{"", false},
	}
	for _, c := range cases {
		got := IsValidPhoneNumber(c.input)
		if got != c.want {
			t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-01-31"); !ok {
		t.Error("IsValidDate(2024-01-31) = false, want true")
	}
	if _, ok := IsValidDate("31-01-2024"); ok {
		t.Error("IsValidDate(31-01-2024) = true, want false")
	}
}

func TestCoordinateBounds(t *testing.T) {
	if !IsValidLatitude(28.6139) || !IsValidLongitude(77.2090) {
		t.Error("Delhi coordinates should be valid")
	}
	if IsValidLatitude(91) || IsValidLatitude(-91) {
		t.Error("latitude outside [-90,90] should be invalid")
	}
	if IsValidLongitude(181) || IsValidLongitude(-181) {
		t.Error("longitude outside [-180,180] should be invalid")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "email", Message: "invalid email format"},
	}
	m := errs.ToMap()
	if m["username"] != "username is required" || m["email"] != "invalid email format" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "username: username is required; email: invalid email format" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
