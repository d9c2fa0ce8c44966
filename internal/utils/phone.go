package utils

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number")

	digitsOnly = regexp.MustCompile(`^[0-9]{8,15}$`)
)

// NormalizePhoneNumber returns the number in E.164 form. Numbers without an
// international prefix get defaultCountryCode prepended.
func NormalizePhoneNumber(phone, defaultCountryCode string) (string, error) {
	replacer := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "")
	stripped := replacer.Replace(strings.TrimSpace(phone))

	international := false
	switch {
	case strings.HasPrefix(stripped, "+"):
		stripped = stripped[1:]
		international = true
	case strings.HasPrefix(stripped, "00"):
		stripped = stripped[2:]
		international = true
	}

	if !international {
		stripped = strings.TrimPrefix(stripped, "0")
		cc := strings.TrimPrefix(defaultCountryCode, "+")
		if cc != "" && !strings.HasPrefix(stripped, cc) {
			stripped = cc + stripped
		}
	}

	if !digitsOnly.MatchString(stripped) {
		return "", ErrInvalidPhoneNumber
	}
	return "+" + stripped, nil
}
