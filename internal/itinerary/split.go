package itinerary

import "strings"

// Sections holds the raw content lines of every section, keyed by canonical section key.
type Sections map[SectionKey][]string

// Split buckets the lines of text under the most recent header line. Header
// lines themselves, blank lines and lines before the first header are dropped.
func Split(text string) (Sections, error) {
	sections := Sections{}

	var current SectionKey
	for _, raw := range lineBreak.Split(text, -1) {
		line := strings.TrimSpace(raw)

		if key, ok := sectionForMarker(line); ok {
			current = key
			if _, exists := sections[key]; !exists {
				sections[key] = []string{}
			}
			continue
		}

		if line == "" || current == "" {
			continue
		}

		sections[current] = append(sections[current], raw)
	}

	if len(sections) == 0 {
		return nil, ErrNoSectionsDetected
	}

	return sections, nil
}

// Normalize returns a copy of sections holding every canonical key.
func Normalize(sections Sections) Sections {
	out := make(Sections, len(SectionOrder))
	for _, key := range SectionOrder {
		lines := sections[key]
		if lines == nil {
			lines = []string{}
		}
		out[key] = lines
	}
	return out
}
