package analytics

import "strings"

// NormalizeID trims an identifier and strips hyphen separators so that
// chassis/serial numbers formatted with or without separators compare equal.
func NormalizeID(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
}
