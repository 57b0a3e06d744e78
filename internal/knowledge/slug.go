package knowledge

import "strings"

// Slugify turns a display name into the canonical lowercase, hyphenated identifier.
// Applying it to an already canonical slug is a no-op.
func Slugify(display string) string {
	normalized := strings.ToLower(strings.TrimSpace(display))
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	return strings.Join(fields, "-")
}

// DisplayName renders a slug for humans: hyphens become spaces, each word is
// title-cased. DisplayName and Slugify round-trip.
func DisplayName(slug string) string {
	parts := strings.Split(Slugify(slug), "-")
	for index, part := range parts {
		parts[index] = titleCaseWord(part)
	}
	return strings.Join(parts, " ")
}

// TitleCasePhrase title-cases every space- or hyphen-separated token while
// keeping the original separators. Used for custom symptom names.
func TitleCasePhrase(phrase string) string {
	var builder strings.Builder
	builder.Grow(len(phrase))

	upperNext := true
	for _, r := range strings.TrimSpace(phrase) {
		switch {
		case r == ' ' || r == '-':
			builder.WriteRune(r)
			upperNext = true
		case upperNext:
			builder.WriteString(strings.ToUpper(string(r)))
			upperNext = false
		default:
			builder.WriteString(strings.ToLower(string(r)))
		}
	}
	return builder.String()
}

func titleCaseWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
