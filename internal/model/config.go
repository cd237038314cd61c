package model

import "time"

// RiskCategory is a named, weighted keyword set representing one kind
// of contractual risk. Static configuration, never mutated at runtime.
type RiskCategory struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Weight   float64  `yaml:"weight" json:"weight"` // in (0,1]
}

// RiskThreshold maps a half-open score interval [Min,Max) to a level.
// Thresholds are checked in slice order; first match wins.
type RiskThreshold struct {
	Level RiskLevel `yaml:"level" json:"level"`
	Min   float64   `yaml:"min" json:"min"`
	Max   float64   `yaml:"max" json:"max"`
}

// TemplatesConfig locates the standard-clause template library.
type TemplatesConfig struct {
	// Path to the JSON template library. Empty means compiled-in
	// defaults only; a missing or malformed file also falls back to
	// the defaults.
	Path string `yaml:"path" json:"path"`
}

// ConcurrencyConfig controls the per-clause worker pool.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" json:"workers"`
}

// CacheConfig controls the analysis report cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" json:"enabled"`
	Dir     string        `yaml:"dir" json:"dir"` // disk layer directory; empty disables the disk layer
	TTL     time.Duration `yaml:"ttl" json:"ttl"`
}

// LLMConfig configures the optional plain-language summarizer. An empty
// Provider disables it entirely.
type LLMConfig struct {
	Provider          string  `yaml:"provider" json:"provider"`
	Model             string  `yaml:"model" json:"model"`
	APIKey            string  `yaml:"-" json:"-"`
	BaseURL           string  `yaml:"base_url" json:"base_url"`
	RequestsPerMinute float64 `yaml:"requests_per_minute" json:"requests_per_minute"`
}

// OutputConfig controls CLI rendering behavior.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// Config is the immutable process-wide configuration. It is constructed
// once at startup and passed explicitly into each component; nothing in
// the engine mutates it, so unsynchronized concurrent reads are safe.
type Config struct {
	Language string `yaml:"language" json:"language"` // "auto", "en" or "hi"

	MinClauseLength int `yaml:"min_clause_length" json:"min_clause_length"`
	MaxClauseLength int `yaml:"max_clause_length" json:"max_clause_length"` // advisory, not enforced by truncation

	Categories []RiskCategory  `yaml:"risk_categories" json:"risk_categories"`
	Thresholds []RiskThreshold `yaml:"risk_thresholds" json:"risk_thresholds"`

	Templates   TemplatesConfig   `yaml:"templates" json:"templates"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// LevelFor looks up a score in the ordered threshold table. Ranges are
// half-open [min,max); the first matching range wins, and anything that
// falls through classifies low.
func (c *Config) LevelFor(score float64) RiskLevel {
	for _, t := range c.Thresholds {
		if score >= t.Min && score < t.Max {
			return t.Level
		}
	}
	return RiskLow
}

// Category returns the named risk category, if configured.
func (c *Config) Category(name string) (RiskCategory, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return RiskCategory{}, false
}

// DefaultConfig returns the built-in configuration: the full risk
// category keyword tables, the threshold table and engine constants.
func DefaultConfig() *Config {
	return &Config{
		Language:        "auto",
		MinClauseLength: 20,
		MaxClauseLength: 5000,
		Categories:      defaultCategories(),
		// The upper bound deliberately exceeds 1.0 so a perfect score
		// still classifies high instead of falling through.
		Thresholds: []RiskThreshold{
			{Level: RiskLow, Min: 0.0, Max: 0.3},
			{Level: RiskMedium, Min: 0.3, Max: 0.6},
			{Level: RiskHigh, Min: 0.6, Max: 1.1},
		},
		Concurrency: ConcurrencyConfig{Workers: 4},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     24 * time.Hour,
		},
		LLM: LLMConfig{
			Model:             "gpt-4o-mini",
			RequestsPerMinute: 20,
		},
		Output: OutputConfig{IncludeFooter: true},
	}
}

func defaultCategories() []RiskCategory {
	return []RiskCategory{
		{
			Name: "manipulative_language",
			Keywords: []string{
				"custody", "temporary custody", "relinquishes", "relinquish", "knowingly accepts",
				"full awareness", "sole responsibility", "personal accountability", "weight of",
				"responsibility over denial", "no external system", "no permission", "emotional fatigue",
				"blame circumstances", "resilience is built", "facing what", "scars included",
				"unknowingly agrees", "illusion of control", "no protection", "no refunds",
				"no guarantee", "validation may be absent", "disguised as discomfort", "without warning",
				"uncomfortable truth", "psychological", "emotional manipulation", "mental state",
			},
			Weight: 1.0,
		},
		{
			Name: "emotional_pressure",
			Keywords: []string{
				"unmet expectations", "loneliness", "self-confrontation", "unresolved thoughts",
				"delayed ambitions", "fear of falling behind", "worthlessness", "self-doubt",
				"controlled exposure", "consents to", "no reassurance", "no clear timeline",
				"repeated failure", "comparison may occur", "confidence may dip", "silence from others",
				"avoiding truth", "prolong uncertainty", "discomfort may be necessary",
			},
			Weight: 0.55,
		},
		{
			Name:     "penalty_clause",
			Keywords: []string{"penalty", "liquidated damages", "fine", "forfeit", "deduction"},
			Weight:   0.9,
		},
		{
			Name:     "indemnity_clause",
			Keywords: []string{"indemnify", "indemnification", "hold harmless", "defend"},
			Weight:   0.85,
		},
		{
			Name:     "unilateral_termination",
			Keywords: []string{"terminate at will", "without cause", "sole discretion", "unilateral"},
			Weight:   0.95,
		},
		{
			Name:     "arbitration",
			Keywords: []string{"arbitration", "dispute resolution", "jurisdiction", "governing law"},
			Weight:   0.5,
		},
		{
			Name:     "auto_renewal",
			Keywords: []string{"auto-renew", "automatic renewal", "evergreen", "perpetual"},
			Weight:   0.7,
		},
		{
			Name:     "lock_in",
			Keywords: []string{"lock-in", "minimum period", "cannot terminate", "binding period"},
			Weight:   0.8,
		},
		{
			Name:     "non_compete",
			Keywords: []string{"non-compete", "non-competition", "restraint of trade", "exclusivity"},
			Weight:   0.85,
		},
		{
			Name:     "ip_transfer",
			Keywords: []string{"intellectual property", "ip rights", "copyright", "ownership", "assignment of rights"},
			Weight:   0.9,
		},
		{
			Name:     "liability_cap",
			Keywords: []string{"limitation of liability", "liability cap", "maximum liability", "aggregate liability"},
			Weight:   0.6,
		},
		{
			Name:     "force_majeure",
			Keywords: []string{"force majeure", "act of god", "unforeseeable circumstances"},
			Weight:   0.4,
		},
	}
}
