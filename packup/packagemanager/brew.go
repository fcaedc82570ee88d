package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// BrewBackend drives Homebrew. Runs unprivileged: Homebrew refuses root.
type BrewBackend struct {
	CommandManager cm.CommandManager
}

func (b *BrewBackend) Name() string       { return Brew }
func (b *BrewBackend) Executable() string { return "brew" }

func (b *BrewBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// brew info exits non-zero for unknown formulae, so the exit code is
	// authoritative on its own.
	result, err := run(ctx, b.CommandManager, false, nil, "brew", "info", pkg)
	return existsByExitCode(result, err)
}

func (b *BrewBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, b.CommandManager, false, nil, "brew", "install", pkg)
	return installExitCode(Brew, pkg, result, err)
}

func (b *BrewBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, b.CommandManager, false, nil, "brew", "list", "--versions")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		fields := strings.Fields(line)
		if len(fields) < 1 {
			continue
		}
		entry := InstalledPackage{Manager: Brew, Name: fields[0]}
		if len(fields) > 1 {
			// Multiple versions may be listed; the first is current.
			entry.Version = fields[1]
		}
		packages = append(packages, entry)
	}
	return packages, nil
}
