package packagemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNpmListInstalledParsesPaths(t *testing.T) {
	out := `/usr/local/lib
/usr/local/lib/node_modules/corepack
/usr/local/lib/node_modules/npm
/usr/local/lib/node_modules/@angular/cli
`
	backend := &NpmBackend{CommandManager: scripted("npm ls -g --parseable --depth=0", out)}

	packages, err := backend.ListInstalled(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []InstalledPackage{
		{Manager: "npm", Name: "corepack"},
		{Manager: "npm", Name: "npm"},
		{Manager: "npm", Name: "@angular/cli"},
	}, packages)
}

func TestNodeModuleName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/local/lib/node_modules/typescript", "typescript"},
		{"/usr/local/lib/node_modules/@types/node", "@types/node"},
		{"/usr/local/lib", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, nodeModuleName(tt.path), "path %q", tt.path)
	}
}
