// internal/app/system/normalize/normalize.go

// Package normalize canonicalizes user-supplied identity fields before they
// are written to the database, so lookups and uniqueness checks behave the
// same regardless of how the value was typed.
package normalize

import "strings"

// Email lowercases and trims an email address. Email uniqueness is enforced
// on the normalized form.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Name trims a display name and collapses interior runs of whitespace to a
// single space.
func Name(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
