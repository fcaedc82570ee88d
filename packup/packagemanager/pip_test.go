package packagemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPipListInstalledSkipsHeaderAndSeparator(t *testing.T) {
	out := `Package    Version
---------- -------
pip        24.0
requests   2.31.0
rich       13.7.0
`
	backend := &PipBackend{CommandManager: scripted("pip list", out)}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstalledPackage{
		{Manager: "pip", Name: "pip", Version: "24.0"},
		{Manager: "pip", Name: "requests", Version: "2.31.0"},
		{Manager: "pip", Name: "rich", Version: "13.7.0"},
	}, packages)
}

func TestPipListInstalledEmpty(t *testing.T) {
	backend := &PipBackend{CommandManager: scripted("pip list", "Package Version\n------- -------\n")}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, packages)
}
