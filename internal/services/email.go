package services

import "strings"

// IsValidEmail reports whether the address satisfies the registration
// rules: it contains "@" with a non-empty local part, a "." somewhere
// after the "@", at least one character between "@" and that ".", and
// at least one character after it.
func IsValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}

	dot := strings.Index(email[at:], ".")
	if dot == -1 {
		return false
	}
	dot += at

	if dot-at < 2 {
		return false
	}
	if len(email)-dot < 2 {
		return false
	}

	return true
}
