package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/samogon/internal/core/domain"
)

// Vertex wraps *progrock.VertexRecorder with the state of one package.
type Vertex struct {
	vertex *progrock.VertexRecorder

	mu         sync.Mutex
	downloaded bool
	done       bool
}

// Phase writes the phase to the vertex output. Reaching the unpacking phase without a
// download marks the vertex cached; the done phase completes it.
func (v *Vertex) Phase(phase domain.Phase) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.done {
		return
	}
	_, _ = fmt.Fprintln(v.vertex.Stdout(), phase.String())

	switch phase {
	case domain.PhaseDownloading, domain.PhaseResuming:
		v.downloaded = true
	case domain.PhaseUnpacking:
		if !v.downloaded {
			v.vertex.Cached()
		}
	case domain.PhaseDone:
		v.done = true
		v.vertex.Done(nil)
	}
}

// Retry records a failed attempt.
func (v *Vertex) Retry(attempt int, cause error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	_, _ = fmt.Fprintf(v.vertex.Stderr(), "attempt %d: %v\n", attempt, cause)
}

// Complete marks the vertex as finished (successfully or with an error).
func (v *Vertex) Complete(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.done {
		return
	}
	v.done = true
	v.vertex.Done(err)
}

// Done reports whether the vertex has been completed.
func (v *Vertex) Done() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}
