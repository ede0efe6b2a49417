package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Input validation and sanitization utilities

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	input = strings.ReplaceAll(input, "\x00", "")

	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

// SanitizeSearch cleans a history search term and caps its length.
func SanitizeSearch(q string) string {
	q = SanitizeString(strings.ReplaceAll(q, "\n", " "))
	if r := []rune(q); len(r) > 100 {
		q = string(r[:100])
	}
	return q
}

// ValidateFileName rejects names that try to smuggle a path.
func ValidateFileName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return fmt.Errorf("invalid characters in file name")
	}
	if len(name) > 255 {
		return fmt.Errorf("file name too long")
	}
	return nil
}

// ValidateUploadID checks the id is a UUID.
func ValidateUploadID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid upload ID format")
	}
	return nil
}

// ValidatePage parses a 1-based page number, defaulting to 1.
func ValidatePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// ValidateLimit validates pagination limit
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 10 // default
	}
	if limit > 100 {
		return 100 // max limit
	}
	return limit
}

// ValidateDimension parses a pixel size, falling back to def and capping at
// 4096.
func ValidateDimension(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > 4096 {
		return 4096
	}
	return n
}
