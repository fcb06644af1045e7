package normalize

import (
	"regexp"
	"strings"
)

var (
	nonISBNChars = regexp.MustCompile(`[^0-9Xx]`)
	leadingBy    = regexp.MustCompile(`(?i)^\s*by\b[:\s]*`)
	separators   = regexp.MustCompile(`(?i)\s*(?:,|\band\b|\bwith\b)\s*`)
)

// ISBN strips every character except digits and X/x and lowercases the result.
func ISBN(raw string) string {
	return strings.ToLower(nonISBNChars.ReplaceAllString(raw, ""))
}

// Title collapses whitespace runs to single spaces, trims and lowercases.
func Title(raw string) string {
	return strings.ToLower(strings.Join(strings.Fields(raw), " "))
}

// AuthorLikePattern builds a case-insensitive LIKE pattern for a contributor name.
//
//	"James Patterson" -> "%james%patterson%"
//
// The wildcard between tokens tolerates middle names, initials and suffixes like "with X".
func AuthorLikePattern(name string) string {
	collapsed := strings.ToLower(strings.Join(strings.Fields(name), " "))
	return "%" + strings.ReplaceAll(collapsed, " ", "%") + "%"
}

// ParseAuthors returns the author names found in a contributor string such as
// "by James Patterson and Duane Swierczynski".
// Names are deduplicated case-insensitively, keeping the first casing seen.
func ParseAuthors(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	raw = leadingBy.ReplaceAllString(raw, "")

	seen := make(map[string]struct{})
	out := []string{}
	for _, part := range separators.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k := strings.ToLower(part)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, part)
	}
	return out
}

// MergeKey returns the key used to deduplicate a work across source lists: the normalized ISBN
// when there is one, otherwise the normalized title and authors joined by "|".
func MergeKey(title string, authors []string, isbn string) string {
	if n := ISBN(isbn); n != "" {
		return n
	}
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, Title(a))
	}
	return Title(title) + "|" + strings.Join(names, ",")
}
