package habit

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CanonicalName normalizes a habit name for identity comparison: leading
// and trailing whitespace is trimmed and the result is NFC normalized, so
// the same visible name always maps to the same registry key regardless of
// how the input was composed. Names stay case-sensitive.
func CanonicalName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
