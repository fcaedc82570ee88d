package packagemanager

import (
	"context"
	"testing"

	cm "github.com/m-217/packup/packup/commandmanager"
	"github.com/stretchr/testify/assert"
)

func TestBrewListInstalled(t *testing.T) {
	mock := scripted("brew list --versions", "jq 1.7.1\nripgrep 14.1.0 13.0.0\nwget 1.21.4\n")
	backend := &BrewBackend{CommandManager: mock}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstalledPackage{
		{Manager: "brew", Name: "jq", Version: "1.7.1"},
		{Manager: "brew", Name: "ripgrep", Version: "14.1.0"},
		{Manager: "brew", Name: "wget", Version: "1.21.4"},
	}, packages)
}

func TestBrewListInstalledEmpty(t *testing.T) {
	mock := scripted("brew list --versions", "")
	backend := &BrewBackend{CommandManager: mock}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, packages)
}

func TestBrewExistsByExitCode(t *testing.T) {
	mock := &MockCommandManager{
		Results: map[string]cm.CommandResult{
			"brew info jq":      {ExitCode: 0},
			"brew info nothere": {ExitCode: 1},
		},
	}
	backend := &BrewBackend{CommandManager: mock}

	found, err := backend.Exists(context.Background(), "jq")
	assert.NoError(t, err)
	assert.True(t, found)

	found, err = backend.Exists(context.Background(), "nothere")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestBrewInstallNeverElevates(t *testing.T) {
	mock := &MockCommandManager{}
	backend := &BrewBackend{CommandManager: mock}

	assert.NoError(t, backend.Install(context.Background(), "jq"))
	assert.Equal(t, []string{"brew install jq"}, mock.Calls)
	assert.Equal(t, []bool{false}, mock.SudoCalls)
}
