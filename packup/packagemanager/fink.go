package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// FinkBackend drives Fink, the legacy macOS fallback.
type FinkBackend struct {
	CommandManager cm.CommandManager
}

func (f *FinkBackend) Name() string       { return Fink }
func (f *FinkBackend) Executable() string { return "fink" }

func (f *FinkBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	result, err := run(ctx, f.CommandManager, false, nil, "fink", "describe", pkg)
	return existsByExitCode(result, err)
}

func (f *FinkBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, f.CommandManager, true, nil, "fink", "--yes", "install", pkg)
	return installExitCode(Fink, pkg, result, err)
}

// ListInstalled parses `fink list --installed`, whose rows carry an install
// status flag in the first column:
//
//	 i   ripgrep   14.1.0-1   Line-oriented search tool
func (f *FinkBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, f.CommandManager, false, nil, "fink", "list", "--installed")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		// The status column is a short flag like "i" or "(i)"; anything
		// longer is a banner line.
		if len(fields[0]) > 3 || !strings.Contains(fields[0], "i") {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: Fink, Name: fields[1], Version: fields[2]})
	}
	return packages, nil
}
