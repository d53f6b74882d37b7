package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/cmd/sift/commands"
	"go.trai.ch/sift/internal/app"
	"go.trai.ch/sift/internal/build"
)

type mockApp struct {
	statsFunc  func(path string) (app.Stats, error)
	traceFunc  func(path, kind, name string) ([]string, error)
	verifyFunc func(ctx context.Context, path string) error
}

func (m *mockApp) Stats(path string) (app.Stats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(path)
	}
	return app.Stats{}, nil
}

func (m *mockApp) Trace(path, kind, name string) ([]string, error) {
	if m.traceFunc != nil {
		return m.traceFunc(path, kind, name)
	}
	return nil, nil
}

func (m *mockApp) Verify(ctx context.Context, path string) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, path)
	}
	return nil
}

func TestCommands_Stats(t *testing.T) {
	t.Run("prints counts and state totals", func(t *testing.T) {
		mock := &mockApp{
			statsFunc: func(_ string) (app.Stats, error) {
				return app.Stats{
					Nodes:  3,
					Edges:  4,
					States: map[string]int{"valid": 2, "unknown": 1},
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"stats"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "nodes: 3\nedges: 4\nunknown: 1\nvalid: 2\n", buf.String())
	})

	t.Run("forwards the graph flag", func(t *testing.T) {
		var capturedPath string
		mock := &mockApp{
			statsFunc: func(path string) (app.Stats, error) {
				capturedPath = path
				return app.Stats{}, nil
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"stats", "--graph", "custom/graph.json"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "custom/graph.json", capturedPath)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			statsFunc: func(_ string) (app.Stats, error) {
				return app.Stats{}, errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"stats"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Trace(t *testing.T) {
	t.Run("prints one line per dependency", func(t *testing.T) {
		var capturedKind, capturedName string
		mock := &mockApp{
			traceFunc: func(_, kind, name string) ([]string, error) {
				capturedKind = kind
				capturedName = name
				return []string{
					"hir(b) valid 00000000000000000000000000000002",
					"source(c.rs) unknown 00000000000000000000000000000003",
				}, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"trace", "typeck", "a"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "typeck", capturedKind)
		assert.Equal(t, "a", capturedName)
		assert.Contains(t, buf.String(), "hir(b) valid")
		assert.Contains(t, buf.String(), "source(c.rs) unknown")
	})

	t.Run("reports leaf nodes explicitly", func(t *testing.T) {
		mock := &mockApp{
			traceFunc: func(_, _, _ string) ([]string, error) {
				return nil, nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"trace", "source", "main.rs"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "source(main.rs) has no dependencies\n", buf.String())
	})

	t.Run("requires kind and name arguments", func(t *testing.T) {
		mock := &mockApp{
			traceFunc: func(_, _, _ string) ([]string, error) {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"trace", "typeck"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Verify(t *testing.T) {
	t.Run("prints ok on success", func(t *testing.T) {
		called := false
		mock := &mockApp{
			verifyFunc: func(_ context.Context, _ string) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"verify"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "ok\n", buf.String())
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			verifyFunc: func(_ context.Context, _ string) error {
				return errors.New("identity does not round-trip")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"verify"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "round-trip")
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sift version "+build.Version)
	assert.Contains(t, buf.String(), "commit: "+build.Commit)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sift version "+build.Version)
}
