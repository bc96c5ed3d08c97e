package scheduler

import (
	"maps"

	"go.trai.ch/samogon/internal/core/domain"
)

// GetTaskStatusMap returns a copy of the internal package status map.
// This is exported for testing purposes only.
func (s *Scheduler) GetTaskStatusMap() map[string]domain.PackageStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.taskStatus)
}
