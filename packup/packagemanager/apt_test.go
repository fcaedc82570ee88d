package packagemanager

import (
	"context"
	"testing"

	cm "github.com/m-217/packup/packup/commandmanager"
	"github.com/stretchr/testify/assert"
)

const aptListOutput = `Listing... Done
jq/stable,now 1.7.1-1 amd64 [installed]
ripgrep/stable,now 14.1.0-1 amd64 [installed,automatic]
wget/stable,now 1.21.4-1 amd64 [installed]
`

func TestAptListInstalledSkipsBanner(t *testing.T) {
	backend := &AptBackend{CommandManager: scripted("apt list --installed", aptListOutput)}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstalledPackage{
		{Manager: "apt", Name: "jq", Version: "1.7.1-1"},
		{Manager: "apt", Name: "ripgrep", Version: "14.1.0-1"},
		{Manager: "apt", Name: "wget", Version: "1.21.4-1"},
	}, packages)
}

func TestAptInstallNonInteractive(t *testing.T) {
	mock := &MockCommandManager{}
	backend := &AptBackend{CommandManager: mock}

	assert.NoError(t, backend.Install(context.Background(), "jq"))
	assert.Equal(t, []string{"apt-get install -y jq"}, mock.Calls)
	assert.Equal(t, []bool{true}, mock.SudoCalls)
}

func TestAptExistsInconclusive(t *testing.T) {
	mock := &MockCommandManager{
		Results: map[string]cm.CommandResult{"apt info jq": {ExitCode: 0}},
		Errs:    map[string]error{"apt info jq": assert.AnError},
	}
	backend := &AptBackend{CommandManager: mock}

	found, err := backend.Exists(context.Background(), "jq")
	assert.ErrorIs(t, err, ErrInconclusive)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, found)
}

func TestNalaListsThroughApt(t *testing.T) {
	// nala shares the dpkg database; listing uses apt's stable format but
	// entries are tagged with the manager that was asked.
	backend := &NalaBackend{CommandManager: scripted("apt list --installed", aptListOutput)}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Len(t, packages, 3)
	for _, p := range packages {
		assert.Equal(t, "nala", p.Manager)
	}
}

func TestNalaInstall(t *testing.T) {
	mock := &MockCommandManager{}
	backend := &NalaBackend{CommandManager: mock}

	assert.NoError(t, backend.Install(context.Background(), "jq"))
	assert.Equal(t, []string{"nala install -y jq"}, mock.Calls)
	assert.Equal(t, []bool{true}, mock.SudoCalls)
}
