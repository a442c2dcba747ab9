package validate

import (
	"net/mail"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// IsEmail reports whether address is a plain local@domain.tld address.
// Display names and angle brackets are rejected.
func IsEmail(address string) bool {
	address = strings.ToLower(strings.TrimSpace(address))
	if address == "" || strings.Count(address, "@") != 1 {
		return false
	}
	parsed, err := mail.ParseAddress(address)
	if err != nil || parsed.Address != address {
		return false
	}
	return emailPattern.MatchString(address)
}
