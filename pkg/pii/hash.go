// Package pii provides one-way hashing of personally identifiable
// information (emails, phone numbers) so leads can be deduplicated and
// analyzed without storing the raw values.
package pii

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash normalizes the value (trim, lowercase) and returns its SHA-256 hex
// digest. The same normalized input always produces the same digest.
func Hash(value string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return "", fmt.Errorf("cannot hash empty value")
	}

	digest := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(digest[:]), nil
}

// HashOptional hashes the value when present and returns nil otherwise.
// Used for fields like phone numbers that may be absent from a submission.
func HashOptional(value string) (*string, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	hashed, err := Hash(value)
	if err != nil {
		return nil, err
	}
	return &hashed, nil
}
