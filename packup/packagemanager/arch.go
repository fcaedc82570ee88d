package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// ArchBackend drives pacman or one of the AUR helpers (yay, paru), which
// deliberately mirror pacman's command surface. pacman runs under sudo; the
// helpers refuse to run as root and escalate internally when needed.
type ArchBackend struct {
	CommandManager cm.CommandManager

	name string
	sudo bool
}

func newArchBackend(name string, mgr cm.CommandManager) *ArchBackend {
	return &ArchBackend{
		CommandManager: mgr,
		name:           name,
		sudo:           name == Pacman,
	}
}

func (a *ArchBackend) Name() string       { return a.name }
func (a *ArchBackend) Executable() string { return a.name }

func (a *ArchBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// -Si exits non-zero when no sync database (or AUR entry, for the
	// helpers) knows the package, so the exit code alone is trustworthy.
	result, err := run(ctx, a.CommandManager, false, nil, a.name, "-Si", pkg)
	return existsByExitCode(result, err)
}

func (a *ArchBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, a.CommandManager, a.sudo, nil, a.name, "-S", "--noconfirm", "--needed", pkg)
	return installExitCode(a.name, pkg, result, err)
}

// ListInstalled parses `pacman -Q` style output, one "name version" pair per
// line.
func (a *ArchBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, a.CommandManager, false, nil, a.name, "-Q")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: a.name, Name: fields[0], Version: fields[1]})
	}
	return packages, nil
}
