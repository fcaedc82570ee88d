package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// AptBackend drives apt on Debian-family systems.
type AptBackend struct {
	CommandManager cm.CommandManager
}

func (a *AptBackend) Name() string       { return Apt }
func (a *AptBackend) Executable() string { return "apt" }

func (a *AptBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// apt info exits non-zero when the package is not in any index.
	result, err := run(ctx, a.CommandManager, false, nil, "apt", "info", pkg)
	return existsByExitCode(result, err)
}

func (a *AptBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, a.CommandManager, true,
		[]string{"DEBIAN_FRONTEND=noninteractive"},
		"apt-get", "install", "-y", pkg)
	return installExitCode(Apt, pkg, result, err)
}

func (a *AptBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, a.CommandManager, false, nil, "apt", "list", "--installed")
	if err != nil {
		return nil, err
	}
	return parseAptList(Apt, result.STDOUT), nil
}

// parseAptList parses `apt list --installed` rows:
//
//	Listing... Done
//	jq/stable,now 1.7.1-1 amd64 [installed]
//
// The "Listing..." banner and anything without a slash-separated suite is
// skipped.
func parseAptList(manager, out string) []InstalledPackage {
	var packages []InstalledPackage
	for _, line := range outputLines(out) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		name, _, found := strings.Cut(fields[0], "/")
		if !found || name == "" {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: manager, Name: name, Version: fields[1]})
	}
	return packages
}

// NalaBackend drives nala, the friendlier apt frontend. It is preferred over
// apt when present; both read the same dpkg database, so listing goes
// through apt's stable machine-parseable output rather than nala's
// decorated tables.
type NalaBackend struct {
	CommandManager cm.CommandManager
}

func (n *NalaBackend) Name() string       { return Nala }
func (n *NalaBackend) Executable() string { return "nala" }

func (n *NalaBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	result, err := run(ctx, n.CommandManager, false, nil, "nala", "show", pkg)
	return existsByExitCode(result, err)
}

func (n *NalaBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, n.CommandManager, true,
		[]string{"DEBIAN_FRONTEND=noninteractive"},
		"nala", "install", "-y", pkg)
	return installExitCode(Nala, pkg, result, err)
}

func (n *NalaBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, n.CommandManager, false, nil, "apt", "list", "--installed")
	if err != nil {
		return nil, err
	}
	return parseAptList(Nala, result.STDOUT), nil
}
