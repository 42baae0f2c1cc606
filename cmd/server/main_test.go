package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TODO_SERVER_PORT",
		"TODO_SERVER_LOG_LEVEL",
		"TODO_DATABASE_URL",
		"TODO_AUTH_JWT_SECRET",
	} {
		t.Setenv(key, "")
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Subset(t, names, []string{"serve", "migrate", "prune-tokens"})
}

func TestMigrateCommandArgs(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "missing command", args: []string{"migrate"}, wantErr: "accepts 1 arg(s)"},
		{name: "unknown command", args: []string{"migrate", "sideways"}, wantErr: "invalid argument"},
		{name: "too many args", args: []string{"migrate", "up", "down"}, wantErr: "accepts 1 arg(s)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tc.args)

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestCommandsFailWithoutConfiguration(t *testing.T) {
	clearConfigEnv(t)

	for _, args := range [][]string{{"serve"}, {"migrate", "up"}, {"prune-tokens"}} {
		t.Run(args[0], func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(args)

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to load configuration")
		})
	}
}
