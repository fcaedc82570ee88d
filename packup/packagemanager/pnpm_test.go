package packagemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPnpmListInstalledWaitsForMarker(t *testing.T) {
	out := `Legend: production dependency, optional only, dev only

/home/user/.local/share/pnpm/global/5

dependencies:
prettier 3.2.5
typescript 5.3.3
`
	backend := &PnpmBackend{CommandManager: scripted("pnpm list -g --depth=0", out)}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstalledPackage{
		{Manager: "pnpm", Name: "prettier", Version: "3.2.5"},
		{Manager: "pnpm", Name: "typescript", Version: "5.3.3"},
	}, packages)
}

func TestPnpmListInstalledNoDependenciesSection(t *testing.T) {
	out := "Legend: production dependency, optional only, dev only\n\n/home/user/.local/share/pnpm/global/5\n"
	backend := &PnpmBackend{CommandManager: scripted("pnpm list -g --depth=0", out)}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, packages)
}
