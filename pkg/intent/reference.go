package intent

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ReferencePrefix is the citizen-facing prefix for document reference tokens.
const ReferencePrefix = "REF-"

// FormatReference renders a submission id as the token shown to citizens.
func FormatReference(id int64) string {
	return fmt.Sprintf("%s%d", ReferencePrefix, id)
}

// IsReferenceQuery reports whether a message looks like a reference-number
// status lookup.
func IsReferenceQuery(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "ref-") || strings.Contains(m, "reference")
}

// ExtractReferenceToken picks the most plausible reference token out of a
// message. Tokens literally starting with "ref-" win; otherwise any
// whitespace-delimited token containing "ref" or a digit is taken. The result
// is stripped down to alphanumerics and hyphens. Returns "" when nothing
// token-like is present.
func ExtractReferenceToken(message string) string {
	fields := strings.Fields(message)

	for _, f := range fields {
		if strings.HasPrefix(strings.ToLower(f), "ref-") {
			return cleanToken(f)
		}
	}

	for _, f := range fields {
		lower := strings.ToLower(f)
		if strings.Contains(lower, "ref") || strings.ContainsFunc(f, unicode.IsDigit) {
			return cleanToken(f)
		}
	}

	return ""
}

func cleanToken(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseReferenceID recovers the numeric submission id from a token: the
// first run of digits wins. It tolerates arbitrary trailing garbage
// ("REF-42abc" parses as 42) and degrades to not-found on anything without
// digits.
func ParseReferenceID(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}

	start := -1
	for i, r := range token {
		if unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return 0, false
	}

	end := start
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}

	id, err := strconv.ParseInt(token[start:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
