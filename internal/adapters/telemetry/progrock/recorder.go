// Package progrock records fetch progress as a Progrock tape, one vertex per package.
package progrock

import (
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
)

var _ ports.ProgressSink = (*Recorder)(nil)

// Recorder implements ports.ProgressSink using a progrock recorder.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	vertices map[string]*Vertex
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:        w,
		rec:      progrock.NewRecorder(w),
		vertices: make(map[string]*Vertex),
	}
}

// OnPlan opens a vertex for every planned package.
func (r *Recorder) OnPlan(formulae []domain.Formula) {
	for i := range formulae {
		r.vertex(formulae[i].Name)
	}
}

// OnPhase records the phase transition on the package's vertex.
func (r *Recorder) OnPhase(name string, phase domain.Phase) {
	r.vertex(name).Phase(phase)
}

// OnBytes is not recorded; the tape only tracks phases.
func (r *Recorder) OnBytes(string, int64, int64) {}

// OnRetry records the failed attempt on the vertex's error stream.
func (r *Recorder) OnRetry(name string, attempt int, cause error) {
	r.vertex(name).Retry(attempt, cause)
}

// OnCompleted is not recorded; completion is tracked per vertex.
func (r *Recorder) OnCompleted(int, int) {}

// OnAbort completes the failing vertex with its error.
func (r *Recorder) OnAbort(name string, err error) {
	r.vertex(name).Complete(err)
}

// Vertex returns the vertex recorded for name, if any.
func (r *Recorder) Vertex(name string) (*Vertex, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vertices[name]
	return v, ok
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func (r *Recorder) vertex(name string) *Vertex {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.vertices[name]
	if !ok {
		v = &Vertex{vertex: r.rec.Vertex(digest.FromString(name), name)}
		r.vertices[name] = v
	}
	return v
}
