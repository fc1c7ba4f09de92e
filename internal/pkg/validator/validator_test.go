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
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
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

func TestIsNumeric(t *testing.T) {
	valid := []string{"0", "1234567890", "0012"}
	invalid := []string{"", "12a", "12 34", "-5", "1.5"}
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

func TestIsInSlice(t *testing.T) {
	statuses := []string{"active", "retired"}
	if !IsInSlice("active", statuses) || !IsInSlice("retired", statuses) {
		t.Error("expected known statuses to be found")
	}
	if IsInSlice("deleted", statuses) || IsInSlice("", statuses) {
		t.Error("unknown values must not be found")
	}
	if IsInSlice("active", nil) {
		t.Error("nothing is found in an empty slice")
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"09:00:00", "17:30:00", "00:00:00", "23:59:59"}
	invalid := []string{"24:00:00", "09:60:00", "9:00", "morning", ""}
	for _, s := range valid {
		if _, ok := IsValidTimeOfDay(s); !ok {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidTimeOfDay(s); ok {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-01-10"); !ok {
		t.Error("IsValidDate(2026-01-10) = false, want true")
	}
	for _, s := range []string{"2026-13-01", "10-01-2026", "yesterday", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestCoordinateRanges(t *testing.T) {
	if !IsValidLatitude(-6.2) || !IsValidLongitude(106.8167) {
		t.Error("expected Jakarta coordinates to be valid")
	}
	if IsValidLatitude(91) || IsValidLatitude(-91) {
		t.Error("latitude outside [-90, 90] must be invalid")
	}
	if IsValidLongitude(181) || IsValidLongitude(-181) {
		t.Error("longitude outside [-180, 180] must be invalid")
	}
}

func TestIsValidMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		if !IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = false, want true", m)
		}
	}
	for _, m := range []int{0, 13, -1} {
		if IsValidMonth(m) {
			t.Errorf("IsValidMonth(%d) = true, want false", m)
		}
	}
}
