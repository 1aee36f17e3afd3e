package render

import (
	"strings"
	"unicode"
)

// splitWords breaks an identifier or phrase into lowercase words. It splits
// on spaces, hyphens, underscores, dots, and lower-to-upper camelCase
// boundaries, so "user service", "user_service", and "UserService" all
// produce the same word list.
func splitWords(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	prevLower := false
	for _, r := range s {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '.':
			flush()
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				flush()
			}
			current.WriteRune(r)
			prevLower = false
		default:
			current.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	flush()
	return words
}

// toPascal converts a name to PascalCase: "user service" -> "UserService".
func toPascal(s string) string {
	var sb strings.Builder
	for _, w := range splitWords(s) {
		sb.WriteString(strings.ToUpper(w[:1]))
		sb.WriteString(w[1:])
	}
	return sb.String()
}

// toSnake converts a name to snake_case: "UserService" -> "user_service".
func toSnake(s string) string {
	return strings.Join(splitWords(s), "_")
}

// toKebab converts a name to kebab-case: "UserService" -> "user-service".
func toKebab(s string) string {
	return strings.Join(splitWords(s), "-")
}
