package score

import (
	"fmt"

	"github.com/clausewise/clausewise/internal/model"
)

// Recommendations derives actionable guidance from clause risks and
// flags. Strings are localized for "hi"; anything else gets English.
func Recommendations(lang string, results []model.ClauseRiskResult, flags []model.RiskFlag) []string {
	hindi := lang == "hi"
	var recs []string

	highCount := 0
	categories := make(map[string]bool)
	for _, r := range results {
		if r.RiskLevel == model.RiskHigh {
			highCount++
		}
		for _, cat := range r.MatchedCategories {
			categories[cat] = true
		}
	}

	if highCount > 0 {
		if hindi {
			recs = append(recs, fmt.Sprintf("⚠️ %d उच्च-जोखिम वाले खंडों की पहचान की गई है। हस्ताक्षर करने से पहले इन्हें प्राथमिकता से देखें।", highCount))
		} else {
			recs = append(recs, fmt.Sprintf("⚠️ %d high-risk clause(s) identified. Prioritize reviewing these before signing.", highCount))
		}
	}

	if categories["penalty_clause"] {
		if hindi {
			recs = append(recs, "💰 दंड खंडों (penalty clauses) की सावधानीपूर्वक समीक्षा करें। सुनिश्चित करें कि राशि उचित है।")
		} else {
			recs = append(recs, "💰 Review penalty clauses carefully. Ensure amounts are reasonable and proportionate.")
		}
	}

	if categories["indemnity_clause"] {
		if hindi {
			recs = append(recs, "🛡️ क्षतिपूर्ति खंड (indemnity clause) की जांच करें। अपने दायित्व को सीमित करने का प्रयास करें।")
		} else {
			recs = append(recs,
				"🛡️ Check indemnity clauses. Try to limit your own liability.",
				"🛡️ Negotiate indemnity caps and ensure mutual indemnification where appropriate.")
		}
	}

	if categories["unilateral_termination"] {
		recs = append(recs, "⏰ Request balanced termination rights with adequate notice periods for both parties.")
	}

	if categories["ip_transfer"] {
		recs = append(recs, "📝 Carefully review IP ownership terms. Consider retaining rights to pre-existing IP.")
	}

	criticalFlags := 0
	for _, f := range flags {
		if f.Severity == model.RiskHigh {
			criticalFlags++
		}
	}
	if criticalFlags >= 3 {
		recs = append(recs, "🚨 Multiple critical issues detected. Strongly recommend legal review before proceeding.")
	}

	if len(recs) == 0 {
		recs = append(recs, "✅ Overall risk appears manageable. Still recommend careful review of all terms.")
	}

	return recs
}
