package itinerary

import (
	"regexp"
	"strings"
)

// alternatives builds a non-capturing regexp group from both spellings of a
// label and any synonyms.
func alternatives(label Label, synonyms ...string) string {
	words := append([]string{label.En, label.Es}, synonyms...)
	seen := make(map[string]bool, len(words))
	quoted := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" || seen[word] {
			continue
		}
		seen[word] = true
		quoted = append(quoted, regexp.QuoteMeta(word))
	}
	return "(?:" + strings.Join(quoted, "|") + ")"
}

func fieldAlternatives(fields FieldSet, key string) string {
	for _, f := range fields {
		if f.Key == key {
			return alternatives(f.Label)
		}
	}
	panic("itinerary: unknown field " + key)
}

var (
	lineBreak = regexp.MustCompile(`\r\n|\r|\n`)

	// "- key: value" with the hyphen optional.
	optionalHyphenPair = regexp.MustCompile(`^\s*-?\s*([^:]+?)\s*:\s*(.*)\s*$`)
	// "- key: value" with the hyphen required.
	hyphenPair = regexp.MustCompile(`^\s*-\s*([^:]+?)\s*:\s*(.*)\s*$`)
	// "- anything"
	hyphenLine    = regexp.MustCompile(`^\s*-\s*(.+)$`)
	leadingHyphen = regexp.MustCompile(`^\s*-\s*`)

	passengerTitleLine = regexp.MustCompile(`(?i)^\[` + alternatives(passengerTitle, passengerTitleSynonyms...) + `\s+(.+)\]$`)

	dayHeaderLine = regexp.MustCompile(`(?i)^` + alternatives(dayKeyword, dayKeywordSynonyms...) + `\s*(\d+)\s*:\s*(.*)$`)
	dayDateLine   = regexp.MustCompile(`(?i)^\s*` + fieldAlternatives(dayFields, FieldDate) + `\s*:\s*(.+)$`)
	timedItemLine = regexp.MustCompile(`^\s*-\s*(\d{1,2}:\d{2}|\d{1,2}h\d{2})\s*[:\s]\s*(.+)$`)
	includesLine  = regexp.MustCompile(`(?i)^\s*(?:-\s*)?` + fieldAlternatives(dayFields, FieldIncludes) + `\s*:\s*(.+)$`)
	routeMapLine  = regexp.MustCompile(`(?i)^\[` + regexp.QuoteMeta(routeMapKeyword) + `:\s*(.+?)\s*-\s*(.+?)\]$`)

	hotelHeaderLine = regexp.MustCompile(`(?i)^\s*-\s*` + alternatives(hotelKeyword, hotelKeywordSynonyms...) + `\s*:\s*(.+)$`)
	hotelNameStars  = regexp.MustCompile(`\s+-\s+`)
)

// matchPair splits a key/value line. Both parts come back trimmed.
func matchPair(pattern *regexp.Regexp, line string) (string, string, bool) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
}

// stripListMarker removes one leading "- " and surrounding whitespace.
func stripListMarker(line string) string {
	return strings.TrimSpace(leadingHyphen.ReplaceAllString(line, ""))
}
