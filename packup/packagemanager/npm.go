package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// NpmBackend drives npm global installs.
type NpmBackend struct {
	CommandManager cm.CommandManager
}

func (n *NpmBackend) Name() string       { return Npm }
func (n *NpmBackend) Executable() string { return "npm" }

func (n *NpmBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// npm view exits non-zero (E404) for unknown packages.
	result, err := run(ctx, n.CommandManager, false, nil, "npm", "view", pkg, "version")
	return existsByExitCode(result, err)
}

func (n *NpmBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, n.CommandManager, false, nil, "npm", "install", "-g", pkg)
	return installExitCode(Npm, pkg, result, err)
}

// ListInstalled parses `npm ls -g --parseable --depth=0`, one absolute path
// per line. The first line is the prefix itself and carries no node_modules
// segment; scoped packages keep their @scope/ prefix.
func (n *NpmBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, n.CommandManager, false, nil, "npm", "ls", "-g", "--parseable", "--depth=0")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		name := nodeModuleName(strings.TrimSpace(line))
		if name == "" {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: Npm, Name: name})
	}
	return packages, nil
}

// nodeModuleName extracts the package name from an absolute node_modules
// path, or "" when the path holds none.
func nodeModuleName(path string) string {
	const marker = "node_modules/"
	i := strings.LastIndex(path, marker)
	if i < 0 {
		return ""
	}
	return strings.TrimSuffix(path[i+len(marker):], "/")
}
