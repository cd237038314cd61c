package terms

import (
	"strings"
	"testing"

	"github.com/clausewise/clausewise/internal/model"
)

func typesOf(matches []model.UnfavorableTermMatch) []string {
	var out []string
	for _, m := range matches {
		out = append(out, m.TermType)
	}
	return out
}

func hasType(matches []model.UnfavorableTermMatch, termType string) bool {
	for _, m := range matches {
		if m.TermType == termType {
			return true
		}
	}
	return false
}

func TestDetect_BasicArchetypes(t *testing.T) {
	det := NewDetector("en")

	clauses := []model.Clause{
		{ID: "C001", Label: "5.1", Content: "The Vendor bears unlimited liability for every loss arising hereunder."},
		{ID: "C002", Label: "5.2", Content: "The Client waives all claims against the Vendor in this matter."},
		{ID: "C003", Label: "5.3", Content: "The software is provided as is, and the Vendor disclaims all warranties."},
		{ID: "C004", Label: "5.4", Content: "This license is perpetual and continues in perpetuity."},
	}

	matches := det.Detect(clauses)

	wantTypes := map[string]string{
		"Unlimited Liability": "C001",
		"Waiver of Rights":    "C002",
		"No Warranty":         "C003",
		"Indefinite Term":     "C004",
	}
	for termType, clauseID := range wantTypes {
		found := false
		for _, m := range matches {
			if m.TermType == termType && m.ClauseID == clauseID {
				found = true
				if m.Explanation == "" || m.Alternative == "" {
					t.Errorf("%s: expected explanation and alternative", termType)
				}
			}
		}
		if !found {
			t.Errorf("expected %s on %s, got %v", termType, clauseID, typesOf(matches))
		}
	}
}

func TestDetect_UnilateralAmendmentExcludesMutual(t *testing.T) {
	det := NewDetector("en")

	clauses := []model.Clause{
		{ID: "C001", Content: "The Company may amend this agreement at any time upon publication."},
		{ID: "C002", Content: "The Company may amend this agreement with the mutual consent of the parties."},
		{ID: "C003", Content: "The Company may amend the schedule only when both parties agree in writing."},
	}

	matches := det.Detect(clauses)

	if !hasType(matches, "Unilateral Amendment") {
		t.Fatal("expected a unilateral amendment match on C001")
	}
	for _, m := range matches {
		if m.TermType == "Unilateral Amendment" && m.ClauseID != "C001" {
			t.Errorf("mutual/both-parties text after the match must suppress detection, got clause %s", m.ClauseID)
		}
	}
}

func TestDetect_UnilateralAmendmentLaterMatchStillFires(t *testing.T) {
	det := NewDetector("en")

	// The first hit is followed by "mutual", but a second hit later in
	// the clause is not; the archetype still fires.
	clauses := []model.Clause{{
		ID: "C001",
		Content: "The Company may amend annexes with mutual sign-off recorded in the register. " +
			"Separately, the Company retains the right to change pricing schedules at any time.",
	}}

	if !hasType(det.Detect(clauses), "Unilateral Amendment") {
		t.Error("expected a later unconditioned match to fire")
	}
}

func TestDetect_ExcessiveNoticeRequiresNotice(t *testing.T) {
	det := NewDetector("en")

	clauses := []model.Clause{
		{ID: "C001", Content: "Either party must give 90 days of prior written notice to terminate."},
		{ID: "C002", Content: "The warranty period runs for 90 days from the delivery date."},
	}

	matches := det.Detect(clauses)

	for _, m := range matches {
		if m.TermType == "Excessive Notice" && m.ClauseID == "C002" {
			t.Error("a duration without a following notice mention must not fire")
		}
	}
	found := false
	for _, m := range matches {
		if m.TermType == "Excessive Notice" && m.ClauseID == "C001" {
			found = true
		}
	}
	if !found {
		t.Error("expected excessive notice match on C001")
	}
}

func TestDetect_MultipleArchetypesPerClause(t *testing.T) {
	det := NewDetector("en")

	clauses := []model.Clause{{
		ID:      "C001",
		Content: "The Vendor assumes unlimited liability, and the Client waives all rights of recovery.",
	}}

	matches := det.Detect(clauses)

	if !hasType(matches, "Unlimited Liability") || !hasType(matches, "Waiver of Rights") {
		t.Errorf("expected both archetypes, got %v", typesOf(matches))
	}
}

func TestDetect_ExcerptTruncation(t *testing.T) {
	det := NewDetector("en")

	long := "The Vendor bears unlimited liability. " + strings.Repeat("Additional boilerplate follows. ", 20)
	matches := det.Detect([]model.Clause{{ID: "C001", Content: long}})

	if len(matches) == 0 {
		t.Fatal("expected a match")
	}
	wantLen := 200 + len("...")
	if len(matches[0].Excerpt) != wantLen {
		t.Errorf("expected %d-char excerpt, got %d", wantLen, len(matches[0].Excerpt))
	}
	if !strings.HasSuffix(matches[0].Excerpt, "...") {
		t.Errorf("expected ellipsis suffix, got %q", matches[0].Excerpt)
	}
}

func TestDetect_HindiLocalizationWithFallback(t *testing.T) {
	det := NewDetector("hi")

	clauses := []model.Clause{
		{ID: "C001", Content: "The Vendor bears unlimited liability for all losses without exception."},
		{ID: "C002", Content: "The remedy for breach is the sole and exclusive remedy available here."},
	}

	matches := det.Detect(clauses)

	for _, m := range matches {
		switch m.TermType {
		case "Unlimited Liability":
			if m.Explanation == explanations["Unlimited Liability"] {
				t.Error("expected Hindi explanation for unlimited liability")
			}
		case "Exclusive Remedy":
			// No Hindi entry: English fallback.
			if m.Explanation != explanations["Exclusive Remedy"] {
				t.Errorf("expected English fallback, got %q", m.Explanation)
			}
		}
	}
}

func TestDetect_CleanClauseNoMatches(t *testing.T) {
	det := NewDetector("en")

	clauses := []model.Clause{{
		ID:      "C001",
		Content: "Deliverables are reviewed quarterly and accepted in writing per the mutually agreed schedule.",
	}}

	if matches := det.Detect(clauses); len(matches) != 0 {
		t.Errorf("expected no matches, got %v", typesOf(matches))
	}
}
