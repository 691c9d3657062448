package main

import (
	"bytes"
	"context"
	"testing"

	"customer-records/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestWithRunner_RequiresPostgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	called := false
	err := withRunner(context.Background(), false, func(*database.MigrationRunner) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate requires DB_DRIVER=postgres")
	assert.False(t, called)
}

func TestMigrateDown_RejectsNonNumericSteps(t *testing.T) {
	err := migrateDownCmd.RunE(migrateDownCmd, []string{"many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "steps must be a number")
}

func TestRootCommand_ListsSubcommands(t *testing.T) {
	rootCmd.AddCommand(serveCmd, migrateCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "serve")
	assert.Contains(t, out.String(), "migrate")
}
