package validate

import (
	"testing"
)

func TestPassword(t *testing.T) {
	t.Parallel()

	cases := []struct {
		password string
		want     bool
	}{
		{"SecurePassword123", true},
		{"Abcdefg1", true},
		{"short1A", false},           // under 8 chars
		{"alllowercase1", false},     // no uppercase
		{"NoDigitsHere", false},      // no digit
		{"", false},
		{"12345678", false},
	}
	for _, tc := range cases {
		if got := Password(tc.password); got != tc.want {
			t.Errorf("Password(%q) = %v, want %v", tc.password, got, tc.want)
		}
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		email string
		want  bool
	}{
		{"luis@example.com", true},
		{"a.b+c@sub.example.ec", true},
		{"no-at-sign.com", false},
		{"user@", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Email(tc.email); got != tc.want {
			t.Errorf("Email(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestCellphone(t *testing.T) {
	t.Parallel()

	cases := []struct {
		cellphone string
		want      bool
	}{
		{"123456", true},
		{"1234567", true},
		{"12345", false},    // too short
		{"12345678", false}, // too long
		{"12a456", false},   // non-digit
	}
	for _, tc := range cases {
		if got := Cellphone(tc.cellphone); got != tc.want {
			t.Errorf("Cellphone(%q) = %v, want %v", tc.cellphone, got, tc.want)
		}
	}
}

func TestHour(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour string
		want bool
	}{
		{"09:30", true},
		{"23:59", true},
		{"7:5", true},
		{"24:00", false},
		{"12:60", false},
		{"noon", false},
	}
	for _, tc := range cases {
		if got := Hour(tc.hour); got != tc.want {
			t.Errorf("Hour(%q) = %v, want %v", tc.hour, got, tc.want)
		}
	}
}
