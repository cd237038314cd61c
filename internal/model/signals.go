package model

// NLPSignals bundles the lightweight linguistic signals extracted from
// a document. Entities come from an external NER step when available;
// everything else is derived locally from clause text. The engine only
// reads this bundle, it never depends on any field being present.
type NLPSignals struct {
	Entities     []Entity  `json:"entities,omitempty"`
	KeyTerms     []KeyTerm `json:"key_terms,omitempty"`
	Obligations  []string  `json:"obligations,omitempty"`  // clause ids containing obligation language
	Rights       []string  `json:"rights,omitempty"`       // clause ids containing permissive language
	Prohibitions []string  `json:"prohibitions,omitempty"` // clause ids containing prohibition language
	Amounts      []Amount  `json:"amounts,omitempty"`
	Dates        []string  `json:"dates,omitempty"`
}

// Entity is a named entity supplied by an external NER capability.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// KeyTerm is a legal term of interest with its occurrence count.
type KeyTerm struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Amount is a monetary amount recognized in the text.
type Amount struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Text     string `json:"full_text"`
}
