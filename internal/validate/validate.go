// Package validate holds the input format rules shared by the auth and course
// endpoints.
package validate

import (
	"regexp"
)

var (
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	digitRe     = regexp.MustCompile(`\d`)
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	numericRe   = regexp.MustCompile(`^\d+$`)
	hourRe      = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5]?[0-9])$`)
)

// Password requires at least 8 characters with an uppercase letter and a digit.
func Password(password string) bool {
	if len(password) < 8 {
		return false
	}
	return uppercaseRe.MatchString(password) && digitRe.MatchString(password)
}

// Email checks the address shape.
func Email(email string) bool {
	return emailRe.MatchString(email)
}

// Cellphone accepts 6 or 7 digit numbers.
func Cellphone(cellphone string) bool {
	if len(cellphone) < 6 || len(cellphone) >= 8 {
		return false
	}
	return numericRe.MatchString(cellphone)
}

// Hour accepts 24h HH:MM times.
func Hour(hour string) bool {
	return hourRe.MatchString(hour)
}
