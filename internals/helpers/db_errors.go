package helper

import "strings"

// IsDuplicateErr reports whether a store error is a uniqueness violation.
// Matches the postgres and sqlite message shapes.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique")
}
