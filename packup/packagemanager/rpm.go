package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// DnfBackend drives dnf on Fedora and modern RHEL-family systems.
type DnfBackend struct {
	CommandManager cm.CommandManager
}

func (d *DnfBackend) Name() string       { return Dnf }
func (d *DnfBackend) Executable() string { return "dnf" }

func (d *DnfBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	result, err := run(ctx, d.CommandManager, false, nil, "dnf", "info", pkg)
	return existsByExitCode(result, err)
}

func (d *DnfBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, d.CommandManager, true, nil, "dnf", "install", "-y", pkg)
	return installExitCode(Dnf, pkg, result, err)
}

func (d *DnfBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, d.CommandManager, false, nil, "dnf", "list", "installed")
	if err != nil {
		return nil, err
	}
	return parseRpmList(Dnf, result.STDOUT), nil
}

// YumBackend drives yum on older RHEL-family systems. Same table format as
// dnf, so they share a parser.
type YumBackend struct {
	CommandManager cm.CommandManager
}

func (y *YumBackend) Name() string       { return Yum }
func (y *YumBackend) Executable() string { return "yum" }

func (y *YumBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	result, err := run(ctx, y.CommandManager, false, nil, "yum", "info", pkg)
	return existsByExitCode(result, err)
}

func (y *YumBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, y.CommandManager, true, nil, "yum", "install", "-y", pkg)
	return installExitCode(Yum, pkg, result, err)
}

func (y *YumBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, y.CommandManager, false, nil, "yum", "list", "installed")
	if err != nil {
		return nil, err
	}
	return parseRpmList(Yum, result.STDOUT), nil
}

// parseRpmList parses the `dnf list installed` table:
//
//	Installed Packages
//	jq.x86_64            1.7.1-1.fc39        @fedora
//
// The "Installed Packages" header is skipped, and the trailing ".arch"
// qualifier is stripped from the package name.
func parseRpmList(manager, out string) []InstalledPackage {
	var packages []InstalledPackage
	for _, line := range outputLines(out) {
		if strings.HasPrefix(line, "Installed Packages") || strings.HasPrefix(line, "Last metadata") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name := fields[0]
		if i := strings.LastIndexByte(name, '.'); i > 0 {
			name = name[:i]
		}
		packages = append(packages, InstalledPackage{Manager: manager, Name: name, Version: fields[1]})
	}
	return packages
}
