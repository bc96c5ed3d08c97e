package scheduler_test

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samogon/internal/core/domain"
	"go.trai.ch/samogon/internal/core/ports"
	"go.trai.ch/samogon/internal/core/ports/mocks"
	"go.trai.ch/samogon/internal/engine/scheduler"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	fetcher   *mocks.MockBottleFetcher
	stager    *mocks.MockStager
	sink      *mocks.MockProgressSink
	scheduler *scheduler.Scheduler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()

	f := &fixture{
		fetcher: mocks.NewMockBottleFetcher(ctrl),
		stager:  mocks.NewMockStager(ctrl),
		sink:    mocks.NewMockProgressSink(ctrl),
	}
	f.scheduler = scheduler.NewScheduler(f.fetcher, f.stager, f.sink, tracer)
	return f
}

// stageByName stages every archive into a directory named after its file.
func (f *fixture) stageByName() {
	f.stager.EXPECT().Stage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, archivePath string) (string, error) {
			return "/stage/" + filepath.Base(archivePath), nil
		}).AnyTimes()
}

func formulae(names ...string) []domain.Formula {
	out := make([]domain.Formula, len(names))
	for i, name := range names {
		out[i] = domain.Formula{Name: name, Version: "1.0"}
	}
	return out
}

func archive(name string) domain.FetchOutcome {
	return domain.FetchOutcome{Name: name, ArchivePath: "/cache/" + name}
}

func TestScheduler_Run_BoundsConcurrency(t *testing.T) {
	for _, tc := range []struct {
		name        string
		parallelism int
		want        int32
	}{
		{name: "three", parallelism: 3, want: 3},
		{name: "zero means one", parallelism: 0, want: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			synctest.Test(t, func(t *testing.T) {
				f := newFixture(t)
				f.stageByName()
				f.sink.EXPECT().OnPhase(gomock.Any(), gomock.Any()).AnyTimes()

				var mu sync.Mutex
				var counts []int
				f.sink.EXPECT().OnCompleted(gomock.Any(), 8).Do(func(done, _ int) {
					mu.Lock()
					counts = append(counts, done)
					mu.Unlock()
				}).Times(8)

				var active, peak atomic.Int32
				f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, formula domain.Formula) (domain.FetchOutcome, error) {
						n := active.Add(1)
						for {
							p := peak.Load()
							if n <= p || peak.CompareAndSwap(p, n) {
								break
							}
						}
						time.Sleep(time.Second)
						active.Add(-1)
						return archive(formula.Name), nil
					}).Times(8)

				plan := formulae("a", "b", "c", "d", "e", "f", "g", "h")
				outcomes, err := f.scheduler.Run(t.Context(), plan, tc.parallelism)
				require.NoError(t, err)

				assert.Equal(t, tc.want, peak.Load())
				require.Len(t, outcomes, len(plan))
				for i, outcome := range outcomes {
					assert.Equal(t, plan[i].Name, outcome.Name)
					assert.Equal(t, "/stage/"+plan[i].Name, outcome.StagingDir)
					assert.False(t, outcome.Cached)
				}

				slices.Sort(counts)
				assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, counts)
			})
		})
	}
}

func TestScheduler_Run_ContinuousRefill(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.stageByName()
		f.sink.EXPECT().OnPhase(gomock.Any(), gomock.Any()).AnyTimes()
		f.sink.EXPECT().OnCompleted(gomock.Any(), 4).Times(4)

		durations := map[string]time.Duration{
			"slow": 10 * time.Second,
			"b":    time.Second,
			"c":    time.Second,
			"d":    time.Second,
		}

		var mu sync.Mutex
		started := make(map[string]time.Time)
		f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, formula domain.Formula) (domain.FetchOutcome, error) {
				mu.Lock()
				started[formula.Name] = time.Now()
				mu.Unlock()
				time.Sleep(durations[formula.Name])
				return archive(formula.Name), nil
			}).Times(4)

		start := time.Now()
		_, err := f.scheduler.Run(t.Context(), formulae("slow", "b", "c", "d"), 2)
		require.NoError(t, err)

		// A slot freed by a fast package is refilled without waiting for the slow one.
		assert.Equal(t, start, started["slow"])
		assert.Equal(t, start, started["b"])
		assert.Equal(t, start.Add(time.Second), started["c"])
		assert.Equal(t, start.Add(2*time.Second), started["d"])
		assert.Equal(t, 10*time.Second, time.Since(start))
	})
}

func TestScheduler_Run_FailFast(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.sink.EXPECT().OnPhase(gomock.Any(), gomock.Any()).AnyTimes()

		errA := errors.New("a exploded")
		f.sink.EXPECT().OnAbort("a", errA).Times(1)

		bStarted := make(chan struct{})
		var bCause error
		f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, formula domain.Formula) (domain.FetchOutcome, error) {
				switch formula.Name {
				case "a":
					<-bStarted
					return domain.FetchOutcome{}, errA
				case "b":
					close(bStarted)
					<-ctx.Done()
					bCause = context.Cause(ctx)
					return domain.FetchOutcome{}, ctx.Err()
				default:
					t.Errorf("%s must not be launched after a failure", formula.Name)
					return archive(formula.Name), nil
				}
			}).Times(2)

		outcomes, err := f.scheduler.Run(t.Context(), formulae("a", "b", "c", "d"), 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, errA)
		assert.Nil(t, outcomes)
		assert.ErrorIs(t, bCause, errA)

		assert.Equal(t, map[string]domain.PackageStatus{
			"a": domain.StatusFailed,
			"b": domain.StatusFailed,
			"c": domain.StatusPending,
			"d": domain.StatusPending,
		}, f.scheduler.GetTaskStatusMap())
	})
}

// packageTags counts "package" metadata entries along the error chain.
func packageTags(err error) int {
	n := 0
	for ; err != nil; err = errors.Unwrap(err) {
		if z, ok := err.(*zerr.Error); ok {
			if _, tagged := z.Metadata()["package"]; tagged {
				n++
			}
		}
	}
	return n
}

func TestScheduler_Run_StageFailure(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.sink.EXPECT().OnPhase("a", domain.PhaseUnpacking).Times(1)
		f.sink.EXPECT().OnAbort("a", gomock.Any()).Times(1)

		f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(archive("a"), nil)
		f.stager.EXPECT().Stage(gomock.Any(), "/cache/a").Return("", domain.ErrArchive)

		_, err := f.scheduler.Run(t.Context(), formulae("a"), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrArchive)
		assert.Equal(t, 1, packageTags(err), "failed package is named exactly once")

		status, ok := f.scheduler.Status("a")
		require.True(t, ok)
		assert.Equal(t, domain.StatusFailed, status)
	})
}

func TestScheduler_Run_CachedStatus(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		f := newFixture(t)
		f.stageByName()
		for _, name := range []string{"hit", "miss"} {
			f.sink.EXPECT().OnPhase(name, domain.PhaseUnpacking).Times(1)
			f.sink.EXPECT().OnPhase(name, domain.PhaseDone).Times(1)
		}
		f.sink.EXPECT().OnCompleted(gomock.Any(), 2).Times(2)

		f.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, formula domain.Formula) (domain.FetchOutcome, error) {
				outcome := archive(formula.Name)
				outcome.Cached = formula.Name == "hit"
				return outcome, nil
			}).Times(2)

		outcomes, err := f.scheduler.Run(t.Context(), formulae("hit", "miss"), 2)
		require.NoError(t, err)
		require.Len(t, outcomes, 2)
		assert.True(t, outcomes[0].Cached)
		assert.False(t, outcomes[1].Cached)

		assert.Equal(t, map[string]domain.PackageStatus{
			"hit":  domain.StatusCached,
			"miss": domain.StatusCompleted,
		}, f.scheduler.GetTaskStatusMap())
	})
}

func TestScheduler_Run_Empty(t *testing.T) {
	f := newFixture(t)

	outcomes, err := f.scheduler.Run(t.Context(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestScheduler_Run_CancelledContext(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := f.scheduler.Run(ctx, formulae("a", "b"), 2)
	require.ErrorIs(t, err, context.Canceled)

	status, ok := f.scheduler.Status("b")
	require.True(t, ok)
	assert.Equal(t, domain.StatusPending, status)
}
