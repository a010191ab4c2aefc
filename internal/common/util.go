package common

import "strings"

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// passwords from memory once they have been sent to the server.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// IsBlank reports whether s is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
