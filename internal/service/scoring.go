package service

import (
	"exam-scheduler-backend/internal/database/models"
)

// ScoreFunc rates a candidate supervisor for suggestion ranking. Higher is
// better. The formula is a tuning knob, not a contract, so callers may swap
// in their own.
type ScoreFunc func(supervisor *models.Supervisor) int

// DefaultScore rewards low current load and explicitly preferred
// availability windows.
func DefaultScore(supervisor *models.Supervisor) int {
	base := 100 - supervisor.CurrentLoad*5
	if base < 0 {
		base = 0
	}
	return base + supervisor.PreferredWindowCount()*10
}
