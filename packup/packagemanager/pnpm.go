package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// PnpmBackend drives pnpm global installs.
type PnpmBackend struct {
	CommandManager cm.CommandManager
}

func (p *PnpmBackend) Name() string       { return Pnpm }
func (p *PnpmBackend) Executable() string { return "pnpm" }

func (p *PnpmBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// Same registry and semantics as npm view: non-zero on unknown.
	result, err := run(ctx, p.CommandManager, false, nil, "pnpm", "view", pkg, "version")
	return existsByExitCode(result, err)
}

func (p *PnpmBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, p.CommandManager, false, nil, "pnpm", "add", "-g", pkg)
	return installExitCode(Pnpm, pkg, result, err)
}

// ListInstalled parses `pnpm list -g --depth=0`, where the package rows only
// begin after a "dependencies:" marker; everything before it is preamble
// (legend, store path, blank lines):
//
//	Legend: production dependency, optional only, dev only
//
//	/home/user/.local/share/pnpm/global/5
//
//	dependencies:
//	typescript 5.3.3
func (p *PnpmBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, p.CommandManager, false, nil, "pnpm", "list", "-g", "--depth=0")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	inDependencies := false
	for _, line := range outputLines(result.STDOUT) {
		if strings.HasPrefix(strings.TrimSpace(line), "dependencies:") {
			inDependencies = true
			continue
		}
		if !inDependencies {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: Pnpm, Name: fields[0], Version: fields[1]})
	}
	return packages, nil
}
