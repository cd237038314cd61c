// Package template matches contract clauses against a library of
// standard, SME-favorable reference clauses.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/clausewise/clausewise/internal/model"
)

// Library maps a template key (e.g. "payment_terms") to its reference
// clause.
type Library map[string]model.Template

// Load reads a template library from a JSON file. A missing or
// malformed file falls back to the compiled-in defaults; loading is
// never fatal. An empty path means defaults only.
func Load(path string) Library {
	if path == "" {
		return DefaultLibrary()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultLibrary()
	}
	var lib Library
	if err := json.Unmarshal(data, &lib); err != nil || len(lib) == 0 {
		return DefaultLibrary()
	}
	return lib
}

// Save writes the library as indented JSON, creating parent
// directories as needed.
func (l Library) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create template dir: %w", err)
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write templates: %w", err)
	}
	return nil
}

// Keys returns the template keys in sorted order. Matching iterates in
// this order so results are stable run to run.
func (l Library) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DefaultLibrary returns the compiled-in reference clauses.
func DefaultLibrary() Library {
	return Library{
		"payment_terms": {
			Title:    "Balanced Payment Terms",
			Template: "Payment shall be made within [30/60] days of receipt of invoice. Late payments shall accrue interest at [X]% per month. The Client reserves the right to withhold payment for defective deliverables until rectified.",
			KeyPoints: []string{
				"Clear payment timeline",
				"Reasonable interest on late payment",
				"Right to withhold for non-performance",
			},
		},
		"termination": {
			Title:    "Mutual Termination Rights",
			Template: "Either party may terminate this Agreement by providing [30/60/90] days' written notice to the other party. In case of material breach, the non-breaching party may terminate immediately upon written notice, with opportunity to cure within [15] days.",
			KeyPoints: []string{
				"Equal termination rights for both parties",
				"Reasonable notice period",
				"Opportunity to cure breaches",
			},
		},
		"liability": {
			Title:    "Limited Liability Clause",
			Template: "Total liability of either party shall not exceed the total amount paid under this Agreement in the [12] months preceding the claim, or [specified amount], whichever is lower. Neither party shall be liable for indirect, incidental, or consequential damages.",
			KeyPoints: []string{
				"Capped liability amount",
				"Mutual limitation",
				"Exclusion of consequential damages",
			},
		},
		"indemnification": {
			Title:    "Mutual Indemnification",
			Template: "Each party shall indemnify the other against third-party claims arising from: (i) breach of this Agreement, (ii) negligence or willful misconduct, (iii) violation of applicable laws. Indemnification shall be limited to direct damages and shall not exceed the liability cap defined herein.",
			KeyPoints: []string{
				"Mutual indemnification",
				"Specific triggering events",
				"Limited to direct damages",
			},
		},
		"confidentiality": {
			Title:    "Standard Confidentiality Clause",
			Template: "Each party agrees to maintain confidentiality of the other party's Confidential Information for a period of [2/3/5] years. Confidential Information shall not include information that: (i) is publicly available, (ii) was independently developed, (iii) is required to be disclosed by law.",
			KeyPoints: []string{
				"Defined confidentiality period",
				"Clear exclusions",
				"Mutual obligations",
			},
		},
		"ip_rights": {
			Title:    "IP Rights Retention",
			Template: "Each party retains ownership of its pre-existing intellectual property. New IP created during this Agreement shall be owned by [specify party], with the other party receiving a non-exclusive license for [defined purposes].",
			KeyPoints: []string{
				"Pre-existing IP remains with creator",
				"Clear ownership of new IP",
				"License rights defined",
			},
		},
		"dispute_resolution": {
			Title:    "Tiered Dispute Resolution",
			Template: "Disputes shall first be resolved through good faith negotiation for [30] days. If unresolved, parties shall attempt mediation. If mediation fails, disputes shall be resolved through arbitration under [Indian Arbitration Act] in [City], India.",
			KeyPoints: []string{
				"Negotiation first approach",
				"Mediation option",
				"Arbitration in India",
			},
		},
		"force_majeure": {
			Title:    "Reasonable Force Majeure",
			Template: "Neither party shall be liable for failure to perform due to circumstances beyond reasonable control (Force Majeure), including natural disasters, war, government actions, or pandemic. The affected party must notify the other within [7] days and make reasonable efforts to mitigate impact.",
			KeyPoints: []string{
				"Clear definition of Force Majeure",
				"Notice requirement",
				"Mitigation obligation",
			},
		},
		"warranty": {
			Title:    "Basic Warranties",
			Template: "The Service Provider warrants that services will be performed in a professional and workmanlike manner, consistent with industry standards. Services shall substantially conform to specifications for [90] days from delivery. Client's exclusive remedy is re-performance of deficient services.",
			KeyPoints: []string{
				"Professional standard commitment",
				"Conformance to specifications",
				"Limited warranty period",
			},
		},
		"amendment": {
			Title:    "Mutual Amendment Rights",
			Template: "This Agreement may only be amended by written agreement signed by authorized representatives of both parties. No oral modifications shall be binding.",
			KeyPoints: []string{
				"Written amendments only",
				"Mutual consent required",
				"No oral modifications",
			},
		},
	}
}
