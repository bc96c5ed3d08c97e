// Package progress renders fetch progress as linear, prefixed log lines.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/samogon/internal/ui/style"
)

var _ ports.ProgressSink = (*Renderer)(nil)

// byteStep is the percentage step at which download progress is printed.
const byteStep = 25

// Renderer implements ports.ProgressSink for terminals and CI logs alike.
// Every event becomes one line prefixed with the package name.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	styles style.Styles
	now    func() time.Time
	tasks  map[string]*taskState
}

type taskState struct {
	start      time.Time
	downloaded bool
	reported   int
}

// NewRenderer creates a Renderer writing to w. A nil w means os.Stderr.
func NewRenderer(w io.Writer) *Renderer {
	r := &Renderer{now: time.Now, tasks: make(map[string]*taskState)}
	r.SetOutput(w)
	return r
}

// SetOutput redirects the renderer. A nil w means os.Stderr.
func (r *Renderer) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.out = w
	r.styles = style.New(w)
}

// OnPlan prints the number of packages about to be fetched.
func (r *Renderer) OnPlan(formulae []domain.Formula) {
	r.mu.Lock()
	defer r.mu.Unlock()

	title := r.styles.Title.Render(style.Arrow)
	_, _ = fmt.Fprintf(r.out, "%s Fetching %d package(s)\n", title, len(formulae))
}

// OnPhase prints phase transitions. Finishing without a download is reported as cached.
func (r *Renderer) OnPhase(name string, phase domain.Phase) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.taskLocked(name)

	switch phase {
	case domain.PhaseSearchingCache:
		return
	case domain.PhaseResuming, domain.PhaseDownloading:
		task.downloaded = true
		task.reported = 0
		r.printLocked(name, phase.String())
	case domain.PhaseVerifying, domain.PhaseUnpacking:
		r.printLocked(name, r.styles.Faint.Render(phase.String()))
	case domain.PhaseDone:
		elapsed := r.now().Sub(task.start).Round(time.Millisecond)
		msg := fmt.Sprintf("%s Done in %v", r.styles.Success.Render(style.Check), elapsed)
		if !task.downloaded {
			msg += " " + r.styles.Cached.Render("(cached)")
		}
		r.printLocked(name, msg)
	}
}

// OnBytes prints download progress each time another quarter of the archive arrives.
func (r *Renderer) OnBytes(name string, transferred, total int64) {
	if total <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.taskLocked(name)
	pct := int(transferred * 100 / total)
	step := pct / byteStep * byteStep
	if step <= task.reported || step >= 100 {
		return
	}
	task.reported = step
	r.printLocked(name, r.styles.Faint.Render(fmt.Sprintf("%d%% of %s", step, humanize.IBytes(uint64(total)))))
}

// OnRetry prints a warning line for the repeated attempt.
func (r *Renderer) OnRetry(name string, attempt int, cause error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	symbol := r.styles.Warning.Render(style.Warning)
	r.printLocked(name, fmt.Sprintf("%s Retrying (attempt %d): %v", symbol, attempt, cause))
}

// OnCompleted prints the aggregate counter.
func (r *Renderer) OnCompleted(done, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintln(r.out, r.styles.Faint.Render(fmt.Sprintf("%d/%d packages fetched", done, total)))
}

// OnAbort prints the failure line of the package that aborted the run.
func (r *Renderer) OnAbort(name string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task := r.taskLocked(name)
	elapsed := r.now().Sub(task.start).Round(time.Millisecond)
	symbol := r.styles.Failure.Render(style.Cross)
	r.printLocked(name, fmt.Sprintf("%s Failed after %v: %v", symbol, elapsed, err))
}

// taskLocked returns the state for name, creating it on first use.
// Must be called with r.mu held.
func (r *Renderer) taskLocked(name string) *taskState {
	task, ok := r.tasks[name]
	if !ok {
		task = &taskState{start: r.now()}
		r.tasks[name] = task
	}
	return task
}

// printLocked prints a line with the package name prefix.
// Must be called with r.mu held.
func (r *Renderer) printLocked(name, msg string) {
	prefix := r.styles.Prefix.Render(fmt.Sprintf("[%s]", name))
	_, _ = fmt.Fprintf(r.out, "%s %s\n", prefix, msg)
}
