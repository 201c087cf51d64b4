package store

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/util"
	"nextlevel_lms/pkg/logger"

	"go.uber.org/zap"
)

// migrateLegacy moves reviews and payments kept under their old standalone keys into
// lms_data. Records whose id is already present are skipped. The legacy keys are
// removed only after the merged dataset has been saved.
func (s *Store) migrateLegacy() {
	var (
		reviews  []model.Review
		payments []model.Payment
	)
	hasReviews := s.ReadJSON(util.KeyLegacyReviews, &reviews)
	hasPayments := s.ReadJSON(util.KeyLegacyPayments, &payments)
	if !hasReviews && !hasPayments {
		return
	}

	var addedReviews, addedPayments int
	s.mu.Lock()
	next := s.data.Clone()

	seen := make(map[string]bool, len(next.Reviews))
	for _, r := range next.Reviews {
		seen[r.ID] = true
	}
	for _, r := range reviews {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		next.Reviews = append(next.Reviews, r)
		addedReviews++
	}

	seen = make(map[string]bool, len(next.Payments))
	for _, p := range next.Payments {
		seen[p.ID] = true
	}
	for _, p := range payments {
		if p.ID == "" || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		next.Payments = append(next.Payments, p)
		addedPayments++
	}

	s.data = next
	s.mu.Unlock()

	if !s.WriteJSON(util.KeyData, next) {
		logger.Log.Warn("Legacy data kept in place, merged dataset was not saved")
		return
	}
	if hasReviews {
		s.Remove(util.KeyLegacyReviews)
	}
	if hasPayments {
		s.Remove(util.KeyLegacyPayments)
	}

	logger.Log.Info("Migrated legacy collections",
		zap.Int("reviews", addedReviews),
		zap.Int("payments", addedPayments),
	)
}
