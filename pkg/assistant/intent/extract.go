package intent

import (
	"regexp"
	"strings"
)

var (
	availabilitySubjectRe = regexp.MustCompile(`(?i)(?:for|product|is)\s+([A-Za-z0-9\s]+?)(?:\s+available|\s+near me|$)`)
	trendSubjectRe        = regexp.MustCompile(`(?i)(?:for|of)\s+([A-Za-z0-9\s]+?)(?:\s+for the past|\s+price trend|$)`)
)

// extractAvailabilitySubject pulls the product name out of an
// availability question. Extraction is best effort; when nothing
// matches it falls back to a generic subject.
func extractAvailabilitySubject(text string) string {
	match := availabilitySubjectRe.FindStringSubmatch(text)
	if match == nil {
		return "the product"
	}
	name := strings.TrimSpace(match[1])
	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "this ") {
		name = strings.TrimSpace(name[len("this "):])
	} else if strings.HasPrefix(lower, "the ") {
		name = strings.TrimSpace(name[len("the "):])
	}
	if name == "" {
		return "the product"
	}
	return name
}

// extractTrendSubject pulls the product name out of a price trend
// question, defaulting when nothing usable matches.
func extractTrendSubject(text string) string {
	match := trendSubjectRe.FindStringSubmatch(text)
	if match == nil {
		return "a product"
	}
	name := strings.TrimSpace(match[1])
	if name == "" {
		return "a product"
	}
	return name
}

// extractTimeframe reads an explicit timeframe mention out of the text.
// The fallback is the timeframe carried in the conversation context so
// that follow-up questions keep the span the user last asked for.
func extractTimeframe(text string, fallback Timeframe) Timeframe {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "past week"):
		return TimeframeWeek
	case strings.Contains(lower, "past month"):
		return TimeframeMonth
	case strings.Contains(lower, "past year"):
		return TimeframeYear
	}
	if fallback.Valid() {
		return fallback
	}
	return TimeframeMonth
}
