package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// BunBackend drives bun global installs. bun shares the npm registry, and
// `bun pm view` follows npm's exit-code convention for unknown packages.
type BunBackend struct {
	CommandManager cm.CommandManager
}

func (b *BunBackend) Name() string       { return Bun }
func (b *BunBackend) Executable() string { return "bun" }

func (b *BunBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	result, err := run(ctx, b.CommandManager, false, nil, "bun", "pm", "view", pkg, "version")
	return existsByExitCode(result, err)
}

func (b *BunBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, b.CommandManager, false, nil, "bun", "add", "-g", pkg)
	return installExitCode(Bun, pkg, result, err)
}

// ListInstalled parses `bun pm ls -g`, whose rows are prefixed with
// box-drawing tree glyphs:
//
//	/home/user/.bun/install/global node_modules (2)
//	├── prettier@3.2.5
//	└── typescript@5.3.3
func (b *BunBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, b.CommandManager, false, nil, "bun", "pm", "ls", "-g")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		_, row, found := strings.Cut(line, "── ")
		if !found {
			continue
		}
		name, version := splitScopedAt(strings.TrimSpace(row))
		if name == "" {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: Bun, Name: name, Version: version})
	}
	return packages, nil
}

// splitScopedAt splits "name@1.0.0" at the version separator, leaving scoped
// names like "@types/node@20.11.5" intact.
func splitScopedAt(token string) (name, version string) {
	if i := strings.LastIndexByte(token, '@'); i > 0 {
		return token[:i], token[i+1:]
	}
	return token, ""
}
