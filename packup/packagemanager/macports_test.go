package packagemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortListInstalledSkipsHeader(t *testing.T) {
	out := `The following ports are currently installed:
  ripgrep @14.1.0_0 (active)
  wget @1.21.4_1+ssl (active)
`
	backend := &PortBackend{CommandManager: scripted("port installed", out)}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstalledPackage{
		{Manager: "port", Name: "ripgrep", Version: "14.1.0"},
		{Manager: "port", Name: "wget", Version: "1.21.4"},
	}, packages)
}

func TestPortInstallElevates(t *testing.T) {
	mock := &MockCommandManager{}
	backend := &PortBackend{CommandManager: mock}

	assert.NoError(t, backend.Install(context.Background(), "jq"))
	assert.Equal(t, []string{"port -N install jq"}, mock.Calls)
	assert.Equal(t, []bool{true}, mock.SudoCalls)
}
