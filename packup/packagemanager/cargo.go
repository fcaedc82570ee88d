package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// CargoBackend drives cargo's crates.io installs.
type CargoBackend struct {
	CommandManager cm.CommandManager
}

func (c *CargoBackend) Name() string       { return Cargo }
func (c *CargoBackend) Executable() string { return "cargo" }

func (c *CargoBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// cargo search exits 0 even when nothing matches, and matches are
	// fuzzy, so the result line must name the exact crate.
	result, err := run(ctx, c.CommandManager, false, nil, "cargo", "search", pkg, "--limit", "1")
	return existsByOutput(result, err, func(line string) bool {
		return strings.HasPrefix(line, pkg+" = ")
	})
}

func (c *CargoBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, c.CommandManager, false, nil, "cargo", "install", pkg)
	return installExitCode(Cargo, pkg, result, err)
}

// ListInstalled parses `cargo install --list`, which emits a two-line block
// per crate. Only the unindented header line carries the version; the
// indented lines name installed binaries and are skipped:
//
//	ripgrep v14.1.0:
//	    rg
func (c *CargoBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, c.CommandManager, false, nil, "cargo", "install", "--list")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.HasPrefix(fields[1], "v") {
			continue
		}
		version := strings.TrimSuffix(strings.TrimPrefix(fields[1], "v"), ":")
		packages = append(packages, InstalledPackage{Manager: Cargo, Name: fields[0], Version: version})
	}
	return packages, nil
}
