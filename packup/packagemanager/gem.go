package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// GemBackend drives RubyGems.
type GemBackend struct {
	CommandManager cm.CommandManager
}

func (g *GemBackend) Name() string       { return Gem }
func (g *GemBackend) Executable() string { return "gem" }

func (g *GemBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// A remote lookup with no match still exits 0 and prints only the
	// "*** REMOTE GEMS ***" banner, so the gem name must appear.
	result, err := run(ctx, g.CommandManager, false, nil, "gem", "list", "--remote", "--exact", pkg)
	return existsByOutput(result, err, func(line string) bool {
		return strings.HasPrefix(line, pkg+" (")
	})
}

func (g *GemBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, g.CommandManager, false, nil, "gem", "install", pkg)
	return installExitCode(Gem, pkg, result, err)
}

// ListInstalled parses `gem list`:
//
//	*** LOCAL GEMS ***
//
//	rake (13.1.0, 13.0.6)
//
// Banner and blank lines are skipped; of multiple installed versions the
// first (newest) is reported.
func (g *GemBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, g.CommandManager, false, nil, "gem", "list")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		if line == "" || strings.HasPrefix(line, "***") {
			continue
		}
		name, rest, found := strings.Cut(line, " (")
		if !found || name == "" || strings.ContainsRune(name, ' ') {
			continue
		}
		version := strings.TrimSuffix(rest, ")")
		if v, _, multiple := strings.Cut(version, ","); multiple {
			version = v
		}
		packages = append(packages, InstalledPackage{Manager: Gem, Name: name, Version: version})
	}
	return packages, nil
}
