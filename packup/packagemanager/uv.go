package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// UvBackend drives uv's managed tools. uv exposes no registry query of its
// own, so Exists consults the local tool list: a miss simply means the
// orchestrator proceeds straight to an install attempt against PyPI.
type UvBackend struct {
	CommandManager cm.CommandManager
}

func (u *UvBackend) Name() string       { return Uv }
func (u *UvBackend) Executable() string { return "uv" }

func (u *UvBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	result, err := run(ctx, u.CommandManager, false, nil, "uv", "tool", "list")
	return existsByOutput(result, err, func(line string) bool {
		fields := strings.Fields(line)
		return len(fields) > 0 && fields[0] == pkg
	})
}

func (u *UvBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, u.CommandManager, false, nil, "uv", "tool", "install", pkg)
	return installExitCode(Uv, pkg, result, err)
}

// ListInstalled parses `uv tool list`, a two-line block per tool where the
// indented dash rows name the tool's executables:
//
//	black v24.1.0
//	- black
//	- blackd
func (u *UvBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, u.CommandManager, false, nil, "uv", "tool", "list")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "-") {
			continue
		}
		fields := strings.Fields(trimmed)
		entry := InstalledPackage{Manager: Uv, Name: fields[0]}
		if len(fields) > 1 {
			entry.Version = strings.TrimPrefix(fields[1], "v")
		}
		packages = append(packages, entry)
	}
	return packages, nil
}
