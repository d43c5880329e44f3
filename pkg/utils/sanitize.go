package utils

import (
	"html"
	"strings"
)

// SanitizeString trims whitespace and escapes HTML entities. Used for
// free-form string fields (image references) that end up echoed to clients.
func SanitizeString(input string) string {
	return html.EscapeString(strings.TrimSpace(input))
}
