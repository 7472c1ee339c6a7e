package campus

import (
	"regexp"
	"strings"
)

var (
	scriptBlock   = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	scriptScheme  = regexp.MustCompile(`(?i)javascript:`)
	inlineHandler = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// SanitizeString strips script blocks, javascript: URLs and inline event
// handlers from s and trims the result.
func SanitizeString(s string) string {
	s = scriptBlock.ReplaceAllString(s, "")
	s = scriptScheme.ReplaceAllString(s, "")
	s = inlineHandler.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Sanitize walks a decoded JSON value and sanitizes every string in it.
func Sanitize(v any) any {
	switch t := v.(type) {
	case string:
		return SanitizeString(t)
	case []any:
		for i := range t {
			t[i] = Sanitize(t[i])
		}
		return t
	case map[string]any:
		for k, val := range t {
			t[k] = Sanitize(val)
		}
		return t
	default:
		return v
	}
}
