// Package util provides utility functions for common operations like
// formatting sizes and counts for display.
package util

import (
	"fmt"
	"math"
)

// FormatSize converts a byte count into a human-readable string using the most appropriate
// unit (B, KB, MB, GB, TB). The output is formatted with one decimal place. For example:
//
//   - 0 bytes -> "0.0 B"
//   - 1024 bytes -> "1.0 KB"
//   - 1234567 bytes -> "1.2 MB"
func FormatSize(bytes int64) string {
	// Special case for zero to avoid math.Log calculations
	if bytes <= 0 {
		return "0.0 B"
	}

	units := []string{"B", "KB", "MB", "GB", "TB"}
	base := float64(1024)

	exp := int(math.Log(float64(bytes)) / math.Log(base))
	if exp > len(units)-1 {
		exp = len(units) - 1
	}

	value := float64(bytes) / math.Pow(base, float64(exp))
	return fmt.Sprintf("%.1f %s", value, units[exp])
}

// Plural formats a count with a noun, adding "s" (or "ies" for nouns ending
// in "y") when the count is not one: Plural(1, "file") is "1 file",
// Plural(3, "directory") is "3 directories".
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	if l := len(noun); l > 1 && noun[l-1] == 'y' {
		return fmt.Sprintf("%d %sies", n, noun[:l-1])
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
