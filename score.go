package ghostwriter

import (
	"math"
	"regexp"
	"strings"
)

var (
	listItemRe     = regexp.MustCompile(`^[-*]\s+(.+)`)
	keywordSplitRe = regexp.MustCompile(`\s+and\s+|\s*,\s*`)
)

// Interests is the keyword set parsed from an interest profile.
// Order is irrelevant and duplicates are retained.
type Interests []string

// ParseInterests extracts keywords from the list items of a markdown-like
// interest profile. Headings, HTML comments and non-list lines are ignored;
// list items are split on " and " and commas.
func ParseInterests(profile string) Interests {
	var keywords Interests
	for _, line := range strings.Split(strings.ToLower(profile), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "<!--") {
			continue
		}
		m := listItemRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		for _, part := range keywordSplitRe.Split(m[1], -1) {
			if part = strings.TrimSpace(part); part != "" {
				keywords = append(keywords, part)
			}
		}
	}
	return keywords
}

// Score rates title and description against the keyword set on a 1-10 scale.
// An empty keyword set scores DefaultScore.
func (in Interests) Score(title, description string) int {
	if len(in) == 0 {
		return DefaultScore
	}

	text := strings.ToLower(title + " " + description)
	matches := 0
	for _, kw := range in {
		if strings.Contains(text, kw) {
			matches++
		}
	}

	ratio := float64(matches) / float64(len(in))
	score := int(math.Round(1 + ratio*9))
	return max(MinScore, min(MaxScore, score))
}

// Score parses profile and rates title and description against it.
func Score(title, description, profile string) int {
	return ParseInterests(profile).Score(title, description)
}
