package report

import (
	"io"
	"sync"

	"roster-manager/core/reconcile"
	"roster-manager/core/roster"
	"roster-manager/core/sheet"

	"go.uber.org/zap"
)

// Service computes attendance reports against the session roster.
type Service struct {
	store    *roster.Store
	baseline int
	logger   *zap.Logger

	mu   sync.RWMutex
	last *reconcile.Summary
}

// NewService creates a new report service. baseline is the configured
// known population total attached to every summary by default.
func NewService(store *roster.Store, baseline int, logger *zap.Logger) *Service {
	return &Service{store: store, baseline: baseline, logger: logger}
}

// Headcount returns the live attendance counts of the roster.
func (s *Service) Headcount() (present, absent, total int) {
	present, total = s.store.Counts()
	return present, total - present, total
}

// Reconcile flattens a delegation workbook and summarizes it against the
// current roster identifiers. The resulting summary replaces the last one.
// On a parse failure no summary is produced and the prior one is kept.
func (s *Service) Reconcile(r io.Reader, baseline int) (reconcile.Summary, error) {
	delegation, err := sheet.Flatten(r)
	if err != nil {
		return reconcile.Summary{}, err
	}

	if baseline <= 0 {
		baseline = s.baseline
	}
	summary := reconcile.Summarize(delegation, s.store.IDs(), baseline)

	s.mu.Lock()
	s.last = &summary
	s.mu.Unlock()

	s.logger.Info("Reconciliation computed",
		zap.Int("unique_delegation", summary.UniqueDelegation),
		zap.Int("unique_roster", summary.UniqueRoster),
		zap.Int("total_unique", summary.TotalUnique),
		zap.Int("both_present", summary.BothPresent),
	)
	return summary, nil
}

// LastSummary returns the most recent reconciliation summary, if any.
func (s *Service) LastSummary() (reconcile.Summary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return reconcile.Summary{}, false
	}
	return *s.last, true
}
