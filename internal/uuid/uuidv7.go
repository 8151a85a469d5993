package uuid

import (
	"regexp"

	googleuuid "github.com/google/uuid"
)

// canonicalRegex matches the 8-4-4-4-12 hex form only. googleuuid.Parse also
// accepts braces, URNs and the 32-digit form, which path ids must not.
var canonicalRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// New generates a new UUIDv7 based on the current timestamp.
// UUIDv7 is time-ordered and suitable for use as database primary keys.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}
	return id.String()
}

// IsCanonical reports whether s is written in the canonical 8-4-4-4-12
// hexadecimal form (case-insensitive).
func IsCanonical(s string) bool {
	return canonicalRegex.MatchString(s)
}

// Normalize returns the lowercase canonical form of a UUID string.
func Normalize(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}
