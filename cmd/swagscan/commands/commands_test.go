package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swagscan/cmd/swagscan/commands"
	"go.trai.ch/swagscan/internal/app"
	"go.trai.ch/swagscan/internal/build"
	"go.trai.ch/swagscan/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Scan(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--hosts", "hosts.txt", "--routefile", "routes.txt", "--workers", "25"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, app.RunOptions{HostsFile: "hosts.txt", RoutesFile: "routes.txt", Workers: 25}, captured)
	})

	t.Run("absent workers defers to config", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--hosts", "h", "--routefile", "r"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, 0, captured.Workers)
	})

	t.Run("bad workers falls back to default", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--hosts", "h", "--routefile", "r", "--workers", "many"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, domain.DefaultWorkers, captured.Workers)
	})

	t.Run("missing required flags", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			flag string
		}{
			{name: "no hosts", args: []string{"--routefile", "r"}, flag: "--hosts"},
			{name: "no routefile", args: []string{"--hosts", "h"}, flag: "--routefile"},
			{name: "nothing", args: nil, flag: "--hosts"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mock := &mockApp{
					runFunc: func(_ context.Context, _ app.RunOptions) error {
						panic("should not be called")
					},
				}

				cli := commands.New(mock)
				cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
				cli.SetArgs(tt.args)

				err := cli.Execute(context.Background())
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrMissingFlag.Error())
			})
		}
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"--hosts", "h", "--routefile", "r"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestParseWorkers(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: "1", want: 1},
		{raw: " 50 ", want: 50},
		{raw: "0", want: domain.DefaultWorkers},
		{raw: "-3", want: domain.DefaultWorkers},
		{raw: "ten", want: domain.DefaultWorkers},
		{raw: "", want: domain.DefaultWorkers},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, commands.ParseWorkers(tt.raw))
		})
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "swagscan version "+build.Version)
}
