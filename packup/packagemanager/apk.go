package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// ApkBackend drives apk on Alpine.
type ApkBackend struct {
	CommandManager cm.CommandManager
}

func (a *ApkBackend) Name() string       { return Apk }
func (a *ApkBackend) Executable() string { return "apk" }

func (a *ApkBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// apk search exits 0 whether or not anything matched, so the package
	// token has to show up in the output.
	result, err := run(ctx, a.CommandManager, false, nil, "apk", "search", "-e", pkg)
	return existsByOutput(result, err, func(line string) bool {
		name, _ := splitNameVersion(strings.TrimSpace(line))
		return name == pkg
	})
}

func (a *ApkBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, a.CommandManager, true, nil, "apk", "add", pkg)
	return installExitCode(Apk, pkg, result, err)
}

// ListInstalled parses `apk list --installed`:
//
//	musl-1.2.4-r2 x86_64 {musl} (MIT) [installed]
func (a *ApkBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, a.CommandManager, false, nil, "apk", "list", "--installed")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(line, "WARNING") {
			continue
		}
		name, version := splitNameVersion(fields[0])
		if version == "" {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: Apk, Name: name, Version: version})
	}
	return packages, nil
}
