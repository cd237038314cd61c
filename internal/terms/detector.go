// Package terms detects unfavorable contract term archetypes with
// regular expression patterns and produces localized guidance.
package terms

import (
	"regexp"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

const excerptLimit = 200

// archetype is one unfavorable-term pattern. RE2 has no lookaround, so
// the original lookahead conditions are expressed as substring checks
// over the text following a base-pattern match: every string in
// requiresAfter must appear there, and none of excludesAfter may.
type archetype struct {
	name          string
	pattern       *regexp.Regexp
	requiresAfter []string
	excludesAfter []string
}

// archetypes is evaluated in slice order per clause, so output order is
// stable across runs.
var archetypes = []archetype{
	{
		name:    "Psychological Manipulation",
		pattern: regexp.MustCompile(`(?i)(custody.*(?:doubts|fears|thoughts|emotions)|unknowingly agrees|knowingly accepts|temporary custody|mental state|self-blame|illusion of control|relinquish|personal accountability|weight of|no external system|resilience is built)`),
	},
	{
		name:    "Emotional Manipulation",
		pattern: regexp.MustCompile(`(?i)(unresolved thoughts|delayed ambitions|fear of falling behind|worthlessness|self-doubt|controlled exposure|comparison may occur|confidence may dip|silence from others|avoiding truth|discomfort may be necessary|no reassurance)`),
	},
	{
		name:    "Unlimited Liability",
		pattern: regexp.MustCompile(`(?i)(unlimited liability|without limit|no cap on liability)`),
	},
	{
		name:    "Waiver of Rights",
		pattern: regexp.MustCompile(`(?i)(waives all|waiver of rights|foregoes any right)`),
	},
	{
		name:          "Unilateral Amendment",
		pattern:       regexp.MustCompile(`(?i)(may amend|can modify|right to change)`),
		excludesAfter: []string{"mutual", "both parties"},
	},
	{
		name:    "Exclusive Remedy",
		pattern: regexp.MustCompile(`(?i)(sole and exclusive remedy|only remedy|limited to)`),
	},
	{
		name:    "No Warranty",
		pattern: regexp.MustCompile(`(?i)(as is|without warranty|no warranties|disclaims all warranties)`),
	},
	{
		name:    "Indefinite Term",
		pattern: regexp.MustCompile(`(?i)(perpetual|indefinite|no expiration|in perpetuity)`),
	},
	{
		name:    "Broad Assignment",
		pattern: regexp.MustCompile(`(?i)(freely assign|without consent|may assign)`),
	},
	{
		name:          "Excessive Notice",
		pattern:       regexp.MustCompile(`(?i)(90 days|120 days|six months|one year)`),
		requiresAfter: []string{"notice"},
	},
}

// Detector scans clauses for unfavorable term archetypes.
type Detector struct {
	lang string
}

// NewDetector builds a detector that localizes explanations and
// alternatives for lang ("hi" gets Hindi where available, everything
// else English).
func NewDetector(lang string) *Detector {
	return &Detector{lang: lang}
}

// Detect returns one match per (clause, archetype) pair that fires. A
// clause can contribute several matches; clauses appear in input order.
func (d *Detector) Detect(clauses []model.Clause) []model.UnfavorableTermMatch {
	var out []model.UnfavorableTermMatch
	for _, c := range clauses {
		for _, a := range archetypes {
			if !a.matches(c.Content) {
				continue
			}
			out = append(out, model.UnfavorableTermMatch{
				ClauseID:    c.ID,
				Label:       c.Label,
				TermType:    a.name,
				Excerpt:     excerpt(c.Content),
				Explanation: localized(d.lang, a.name, explanations, hindiExplanations, fallbackExplanation),
				Alternative: localized(d.lang, a.name, alternatives, hindiAlternatives, fallbackAlternative),
			})
		}
	}
	return out
}

// matches reports whether any base-pattern hit in content also
// satisfies the archetype's conditions on the trailing text.
func (a *archetype) matches(content string) bool {
	if len(a.requiresAfter) == 0 && len(a.excludesAfter) == 0 {
		return a.pattern.MatchString(content)
	}

	lower := strings.ToLower(content)
	for _, loc := range a.pattern.FindAllStringIndex(content, -1) {
		rest := lower[loc[1]:]
		if a.satisfied(rest) {
			return true
		}
	}
	return false
}

func (a *archetype) satisfied(rest string) bool {
	for _, req := range a.requiresAfter {
		if !strings.Contains(rest, req) {
			return false
		}
	}
	for _, excl := range a.excludesAfter {
		if strings.Contains(rest, excl) {
			return false
		}
	}
	return true
}

// excerpt truncates on rune boundaries so Devanagari text survives.
func excerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLimit {
		return string(runes[:excerptLimit]) + "..."
	}
	return content
}

func localized(lang, name string, english, hindi map[string]string, fallback string) string {
	if lang == "hi" {
		if s, ok := hindi[name]; ok {
			return s
		}
	}
	if s, ok := english[name]; ok {
		return s
	}
	return fallback
}
