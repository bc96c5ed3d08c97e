package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/samogon/cmd/samogon/commands"
	"go.trai.ch/samogon/internal/app"
	"go.trai.ch/samogon/internal/build"
	"go.trai.ch/samogon/internal/core/domain"
)

type mockApp struct {
	installFunc func(ctx context.Context, names []string, opts app.InstallOptions) ([]domain.FetchOutcome, error)
	depsFunc    func(ctx context.Context, names []string) ([]domain.Formula, error)
	cleanFunc   func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Install(
	ctx context.Context,
	names []string,
	opts app.InstallOptions,
) ([]domain.FetchOutcome, error) {
	if m.installFunc != nil {
		return m.installFunc(ctx, names, opts)
	}
	return nil, nil
}

func (m *mockApp) Deps(ctx context.Context, names []string) ([]domain.Formula, error) {
	if m.depsFunc != nil {
		return m.depsFunc(ctx, names)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

type recordingOutput struct {
	verbose, json bool
}

func (r *recordingOutput) SetVerbose(enable bool) { r.verbose = enable }
func (r *recordingOutput) SetJSON(enable bool)    { r.json = enable }

func TestCommands_Install(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.InstallOptions
		var capturedNames []string

		mock := &mockApp{
			installFunc: func(_ context.Context, names []string, opts app.InstallOptions) ([]domain.FetchOutcome, error) {
				capturedOpts = opts
				capturedNames = names
				return []domain.FetchOutcome{{Name: "wget", StagingDir: "/tmp/samogon-1"}}, nil
			},
		}

		cli := commands.New(mock, nil)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"install", "wget", "--yes", "--jobs", "3"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, app.InstallOptions{Yes: true, Jobs: 3}, capturedOpts)
		assert.Equal(t, []string{"wget"}, capturedNames)
		assert.Equal(t, "wget staged in /tmp/samogon-1\n", buf.String())
	})

	t.Run("returns error on install failure", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(context.Context, []string, app.InstallOptions) ([]domain.FetchOutcome, error) {
				return nil, errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"install", "wget"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("shows usage when no formulae provided", func(t *testing.T) {
		mock := &mockApp{
			installFunc: func(context.Context, []string, app.InstallOptions) ([]domain.FetchOutcome, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock, nil)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"install"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_GlobalFlags(t *testing.T) {
	out := &recordingOutput{}
	cli := commands.New(&mockApp{}, out)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"deps", "wget", "--verbose", "--json"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, out.verbose)
	assert.True(t, out.json)
}

func TestCommands_Deps(t *testing.T) {
	mock := &mockApp{
		depsFunc: func(_ context.Context, names []string) ([]domain.Formula, error) {
			assert.Equal(t, []string{"wget"}, names)
			return []domain.Formula{
				{Name: "libidn2", Version: "2.3.7"},
				{Name: "wget", Version: "1.24.5", Revision: 1},
			}, nil
		},
	}

	cli := commands.New(mock, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"deps", "wget"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "libidn2 2.3.7_0\nwget 1.24.5_1\n", buf.String())
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{name: "default cleans everything", args: nil, want: app.CleanOptions{Downloads: true, Index: true}},
		{name: "downloads", args: []string{"--downloads"}, want: app.CleanOptions{Downloads: true}},
		{name: "index", args: []string{"-i"}, want: app.CleanOptions{Index: true}},
		{name: "both", args: []string{"-d", "-i"}, want: app.CleanOptions{Downloads: true, Index: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock, nil)
			cli.SetArgs(append([]string{"clean"}, tt.args...))

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
