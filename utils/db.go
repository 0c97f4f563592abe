package utils

import "strings"

// IsDuplicateError reports whether err is a unique-constraint violation.
// Matches both the MySQL "Duplicate entry" and SQLite "UNIQUE constraint
// failed" messages so handler behavior is the same under test.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint failed")
}
