package domain

import (
	"net/mail"
	"slices"
	"strings"
)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeTag prepares a tag for storage:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses inner whitespace into one space
func NormalizeTag(tag string) string {
	return strings.Join(strings.Fields(strings.ToLower(tag)), " ")
}

// NormalizeTags normalizes every tag, drops empty ones and removes duplicates.
// The first occurrence wins; the result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = NormalizeTag(t)
		if t == "" || slices.Contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TrimOptional trims a nullable string and turns blank values into nil.
func TrimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// TrimPatch trims a partial-update field. Unlike TrimOptional a blank value
// stays "" so the caller can tell "clear" apart from "leave unchanged" (nil).
func TrimPatch(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// ValidEmail reports whether s is a bare address such as "jane@example.com".
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s && strings.Contains(s, "@")
}
