package utils

import "strings"

// ValidateEmptyInput reports whether every field has a non-blank value.
func ValidateEmptyInput(fields ...string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return false
		}
	}
	return true
}

// ValidatePasswordMatched reports whether the password and its confirmation
// agree.
func ValidatePasswordMatched(password, confirmPassword string) bool {
	return password != "" && password == confirmPassword
}

// PhoneNumberExists reports whether phoneNumber appears in the known list.
func PhoneNumberExists(phoneNumber string, known []string) bool {
	phoneNumber = strings.TrimSpace(phoneNumber)
	for _, p := range known {
		if p == phoneNumber {
			return true
		}
	}
	return false
}
