package progress_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/samogon/internal/adapters/progress"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newRenderer returns a renderer whose clock advances one second per reading.
func newRenderer(t *testing.T) (*progress.Renderer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	r := progress.NewRenderer(&buf)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.SetClock(func() time.Time {
		now = now.Add(time.Second)
		return now
	})
	return r, &buf
}

func TestRenderer_DownloadLifecycle(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPlan([]domain.Formula{{Name: "libidn2"}, {Name: "wget"}})
	r.OnPhase("wget", domain.PhaseSearchingCache)
	r.OnPhase("wget", domain.PhaseDownloading)
	r.OnBytes("wget", 0, 4<<20)
	r.OnBytes("wget", 1<<20, 4<<20)
	r.OnBytes("wget", 1<<20+10, 4<<20)
	r.OnBytes("wget", 3<<20, 4<<20)
	r.OnBytes("wget", 4<<20, 4<<20)
	r.OnPhase("wget", domain.PhaseVerifying)
	r.OnPhase("wget", domain.PhaseUnpacking)
	r.OnPhase("wget", domain.PhaseDone)
	r.OnCompleted(1, 2)

	out := buf.String()
	assert.Contains(t, out, "==> Fetching 2 package(s)")
	assert.Contains(t, out, "[wget] downloading")
	assert.Contains(t, out, "[wget] 25% of 4.0 MiB")
	assert.Contains(t, out, "[wget] 75% of 4.0 MiB")
	assert.Equal(t, 1, strings.Count(out, "25%"), "each step is printed once")
	assert.NotContains(t, out, "100%")
	assert.Contains(t, out, "[wget] verifying")
	assert.Contains(t, out, "[wget] ✓ Done in")
	assert.NotContains(t, out, "(cached)")
	assert.Contains(t, out, "1/2 packages fetched")
	assert.NotContains(t, out, "searching-cache")
}

func TestRenderer_CachedPackage(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPhase("wget", domain.PhaseSearchingCache)
	r.OnPhase("wget", domain.PhaseUnpacking)
	r.OnPhase("wget", domain.PhaseDone)

	assert.Contains(t, buf.String(), "(cached)")
}

func TestRenderer_RetryAndAbort(t *testing.T) {
	r, buf := newRenderer(t)

	r.OnPhase("wget", domain.PhaseDownloading)
	r.OnRetry("wget", 2, errors.New("connection reset"))
	r.OnAbort("wget", errors.New("checksum mismatch"))

	out := buf.String()
	assert.Contains(t, out, "[wget] ! Retrying (attempt 2): connection reset")
	assert.Contains(t, out, "[wget] ✗ Failed after")
	assert.Contains(t, out, "checksum mismatch")
}

func TestRenderer_UnknownTotal(t *testing.T) {
	r, buf := newRenderer(t)
	r.OnBytes("wget", 100, 0)
	assert.Empty(t, buf.String())
}

func TestMulti_FansOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockProgressSink(ctrl)
	second := mocks.NewMockProgressSink(ctrl)
	cause := errors.New("boom")
	plan := []domain.Formula{{Name: "wget"}}

	for _, s := range []*mocks.MockProgressSink{first, second} {
		s.EXPECT().OnPlan(plan)
		s.EXPECT().OnPhase("wget", domain.PhaseDownloading)
		s.EXPECT().OnBytes("wget", int64(1), int64(2))
		s.EXPECT().OnRetry("wget", 2, cause)
		s.EXPECT().OnCompleted(1, 1)
		s.EXPECT().OnAbort("wget", cause)
	}

	m := progress.Multi{first, second}
	m.OnPlan(plan)
	m.OnPhase("wget", domain.PhaseDownloading)
	m.OnBytes("wget", 1, 2)
	m.OnRetry("wget", 2, cause)
	m.OnCompleted(1, 1)
	m.OnAbort("wget", cause)
}
