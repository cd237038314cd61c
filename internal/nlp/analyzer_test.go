package nlp

import (
	"testing"

	"github.com/clausewise/clausewise/internal/model"
)

func TestAnalyze_ModalClassification(t *testing.T) {
	a := NewAnalyzer()

	clauses := []model.Clause{
		{ID: "C001", Content: "The Vendor shall deliver the goods by the fifth business day."},
		{ID: "C002", Content: "The Client may inspect the premises during business hours."},
		{ID: "C003", Content: "The Contractor shall not subcontract without approval."},
		{ID: "C004", Content: "Deliveries happen on Mondays."},
	}

	sig := a.Analyze("", clauses)

	if len(sig.Obligations) != 2 || sig.Obligations[0] != "C001" || sig.Obligations[1] != "C003" {
		t.Errorf("obligations: got %v", sig.Obligations)
	}
	if len(sig.Rights) != 1 || sig.Rights[0] != "C002" {
		t.Errorf("rights: got %v", sig.Rights)
	}
	// "shall not" is both an obligation and a prohibition.
	if len(sig.Prohibitions) != 1 || sig.Prohibitions[0] != "C003" {
		t.Errorf("prohibitions: got %v", sig.Prohibitions)
	}
}

func TestAnalyze_WordBoundaries(t *testing.T) {
	a := NewAnalyzer()

	clauses := []model.Clause{
		{ID: "C001", Content: "Dismay and mustard are discussed at the maypole."},
	}

	sig := a.Analyze("", clauses)

	if len(sig.Obligations) != 0 || len(sig.Rights) != 0 {
		t.Errorf("embedded words must not match: obligations=%v rights=%v", sig.Obligations, sig.Rights)
	}
}

func TestKeyTerms_SortedByCount(t *testing.T) {
	text := "Payment terms: payment due monthly. Liability is capped. Payment disputes go to arbitration."

	terms := KeyTerms(text)

	if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %v", terms)
	}
	if terms[0].Term != "payment" || terms[0].Count != 3 {
		t.Errorf("expected payment x3 first, got %+v", terms[0])
	}
	for i := 1; i < len(terms); i++ {
		if terms[i].Count > terms[i-1].Count {
			t.Errorf("terms not sorted by count: %v", terms)
		}
	}
}

func TestAmounts(t *testing.T) {
	text := "Payment of ₹50,000 or $1,200.50 is due; a deposit of Rs. 300 applies."

	amounts := Amounts(text)

	if len(amounts) != 3 {
		t.Fatalf("expected 3 amounts, got %v", amounts)
	}
	byText := make(map[string]model.Amount)
	for _, a := range amounts {
		byText[a.Amount] = a
	}
	if byText["50,000"].Currency != "INR" {
		t.Errorf("₹ amount: got %+v", byText["50,000"])
	}
	if byText["1,200.50"].Currency != "USD" {
		t.Errorf("$ amount: got %+v", byText["1,200.50"])
	}
	if byText["300"].Currency != "INR" {
		t.Errorf("Rs. amount: got %+v", byText["300"])
	}
}

func TestDates(t *testing.T) {
	text := "Effective 01/04/2024, renewing every year until 31 December 2030 or Jan 5, 2031."

	dates := Dates(text)

	want := map[string]bool{}
	for _, d := range dates {
		want[d] = true
	}
	for _, expect := range []string{"01/04/2024", "31 December 2030", "Jan 5, 2031"} {
		if !want[expect] {
			t.Errorf("expected date %q in %v", expect, dates)
		}
	}
}

func TestClassifyClause(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"Payment of the monthly fee is due on the first.", "payment_terms"},
		{"Either party may terminate upon notice.", "termination"},
		{"Liability is capped at the contract value.", "liability"},
		{"Contractor shall indemnify and hold harmless the Client.", "indemnification"},
		{"All proprietary information remains confidential.", "confidentiality"},
		{"Disputes are settled by arbitration in Mumbai.", "dispute_resolution"},
		{"Neither party is liable for force majeure events.", "liability"}, // "liable" wins, rules are ordered
		{"The parties will cooperate in good faith.", "General"},
	}
	for _, tt := range tests {
		got := ClassifyClause(model.Clause{Content: tt.content})
		if got != tt.want {
			t.Errorf("ClassifyClause(%q) = %s, want %s", tt.content, got, tt.want)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"english", "This agreement is made between the parties.", "en"},
		{"hindi", "यह अनुबंध दोनों पक्षों के बीच किया गया है।", "hi"},
		{"mixed mostly hindi", "अनुबंध agreement के बीच दोनों पक्षों की सहमति से बना है।", "hi"},
		{"empty", "", "en"},
		{"digits only", "1234 5678", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("DetectLanguage = %s, want %s", got, tt.want)
			}
		})
	}
}
