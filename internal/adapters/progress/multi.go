package progress

import (
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
)

var _ ports.ProgressSink = Multi(nil)

// Multi forwards every event to each sink in order.
type Multi []ports.ProgressSink

// OnPlan implements ports.ProgressSink.
func (m Multi) OnPlan(formulae []domain.Formula) {
	for _, s := range m {
		s.OnPlan(formulae)
	}
}

// OnPhase implements ports.ProgressSink.
func (m Multi) OnPhase(name string, phase domain.Phase) {
	for _, s := range m {
		s.OnPhase(name, phase)
	}
}

// OnBytes implements ports.ProgressSink.
func (m Multi) OnBytes(name string, transferred, total int64) {
	for _, s := range m {
		s.OnBytes(name, transferred, total)
	}
}

// OnRetry implements ports.ProgressSink.
func (m Multi) OnRetry(name string, attempt int, cause error) {
	for _, s := range m {
		s.OnRetry(name, attempt, cause)
	}
}

// OnCompleted implements ports.ProgressSink.
func (m Multi) OnCompleted(done, total int) {
	for _, s := range m {
		s.OnCompleted(done, total)
	}
}

// OnAbort implements ports.ProgressSink.
func (m Multi) OnAbort(name string, err error) {
	for _, s := range m {
		s.OnAbort(name, err)
	}
}
