package cli

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuildInfo = BuildInfo{Version: "1.2.3", BuildDate: "2025-07-27", GitCommit: "abc123"}

// execute выполняет команду так же, как main, с изолированной конфигурацией
func execute(t *testing.T, inputs []string, args ...string) (string, error) {
	t.Helper()

	mockIO, out := newCaptureIO(inputs...)
	c := New(mockIO)
	root := c.NewRootCommand(testBuildInfo)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	require.NoError(t, c.Close())

	return out.String(), err
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

func TestRootCommand_Version(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version:    1.2.3")
	assert.Contains(t, out, "Build Date: 2025-07-27")
	assert.Contains(t, out, "Git Commit: abc123")
}

func TestRootCommand_Workflow(t *testing.T) {
	for _, driver := range []string{"bolt", "sqlite"} {
		t.Run(driver, func(t *testing.T) {
			isolateConfig(t)
			db := filepath.Join(t.TempDir(), "cards.db")
			global := []string{"--db", db, "--driver", driver}

			out, err := execute(t, nil, append(global, "list")...)
			require.NoError(t, err)
			assert.Contains(t, out, emptyWalletNotice)

			out, err = execute(t,
				[]string{"Travel", "Kevin Chen", "4111 1111 1111 1111", "07", "2029", "123"},
				append(global, "add")...)
			require.NoError(t, err)

			match := regexp.MustCompile(`ID:\s+(\S+)`).FindStringSubmatch(out)
			require.Len(t, match, 2, "add prints the new card ID")
			id := match[1]

			out, err = execute(t, nil, append(global, "list")...)
			require.NoError(t, err)
			assert.Contains(t, out, "**** **** **** 1111")

			out, err = execute(t, nil, append(global, "list", "--reveal", id)...)
			require.NoError(t, err)
			assert.Contains(t, out, "4111 1111 1111 1111")

			out, err = execute(t, nil, append(global, "get", id)...)
			require.NoError(t, err)
			assert.Contains(t, out, "Security Code: 123")

			_, err = execute(t, nil, append(global, "mode", "multi")...)
			require.NoError(t, err)

			out, err = execute(t, nil, append(global, "mode")...)
			require.NoError(t, err)
			assert.Contains(t, out, "Display mode: multi")

			_, err = execute(t, nil, append(global, "delete", id, "--yes")...)
			require.NoError(t, err)

			out, err = execute(t, nil, append(global, "list")...)
			require.NoError(t, err)
			assert.Contains(t, out, emptyWalletNotice)
		})
	}
}

func TestRootCommand_AddInvalidInput(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "cards.db")

	out, err := execute(t,
		[]string{"", "", "4111 1111", "13x", "2029", "123"},
		"--db", db, "add")
	require.ErrorIs(t, err, ErrReported)
	assert.Contains(t, out, invalidInputNotice)

	out, err = execute(t, nil, "--db", db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, emptyWalletNotice)
}

func TestRootCommand_NumberRule(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "cards.db")
	inputs := []string{"", "", "4111 1111 1111", "07", "2029", "123"}

	_, err := execute(t, inputs, "--db", db, "--number-rule", "exact16", "add")
	require.ErrorIs(t, err, ErrReported)

	_, err = execute(t, inputs, "--db", db, "add")
	require.NoError(t, err)
}

func TestRootCommand_NetworkWithoutDatabase(t *testing.T) {
	isolateConfig(t)
	db := filepath.Join(t.TempDir(), "never-created.db")

	out, err := execute(t, nil, "--db", db, "network", "3400 000000 00000")
	require.NoError(t, err)
	assert.Equal(t, "American Express\n", out)

	_, statErr := os.Stat(db)
	assert.True(t, os.IsNotExist(statErr), "network must not open the database")
}

func TestRootCommand_Config(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, nil, "--driver", "sqlite", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "driver: sqlite")
	assert.Contains(t, out, "number_rule: nonempty")

	path := filepath.Join(t.TempDir(), "omnicard.yaml")
	_, err = execute(t, nil, "--log-level", "debug", "config", "--output", path)
	require.NoError(t, err)

	out, err = execute(t, nil, "--config", path, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "level: debug")
}

func TestRootCommand_Errors(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, nil, "--driver", "postgres", "list")
	assert.Error(t, err)

	_, err = execute(t, nil, "get")
	assert.Error(t, err, "get requires an ID")

	_, err = execute(t, nil, "--db", filepath.Join(t.TempDir(), "cards.db"), "mode", "all")
	assert.Error(t, err)

	_, err = execute(t, nil, "unknown")
	assert.Error(t, err)
}
