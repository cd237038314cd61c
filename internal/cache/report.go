package cache

import (
	"encoding/json"
	"time"

	"github.com/clausewise/clausewise/internal/model"
)

// ReportStore is a typed view over a Cache for analysis reports. A nil
// underlying cache turns every operation into a no-op miss.
type ReportStore struct {
	cache Cache
	ttl   time.Duration
}

// NewReportStore wraps a cache layer.
func NewReportStore(c Cache, ttl time.Duration) *ReportStore {
	return &ReportStore{cache: c, ttl: ttl}
}

// Get returns the cached report for a (text, language) pair, if any.
// Undecodable entries are treated as misses and evicted.
func (s *ReportStore) Get(text, lang string) (*model.Report, bool) {
	if s == nil || s.cache == nil {
		return nil, false
	}

	key := Key(text, lang)
	data, found := s.cache.Get(key)
	if !found {
		return nil, false
	}

	var report model.Report
	if err := json.Unmarshal(data, &report); err != nil {
		_ = s.cache.Delete(key)
		return nil, false
	}
	return &report, true
}

// Put stores a finished report. Failures are returned but safe to
// ignore; a cache write never blocks an analysis.
func (s *ReportStore) Put(text, lang string, report *model.Report) error {
	if s == nil || s.cache == nil {
		return nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.cache.Set(Key(text, lang), data, s.ttl)
}
