package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// NixEnvBackend drives the classic nix-env interface to the Nix package set.
type NixEnvBackend struct {
	CommandManager cm.CommandManager
}

func (n *NixEnvBackend) Name() string       { return NixEnv }
func (n *NixEnvBackend) Executable() string { return "nix-env" }

func (n *NixEnvBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// nix-env -qa can exit 0 with an empty result set, so the attribute
	// has to actually appear in stdout.
	result, err := run(ctx, n.CommandManager, false, nil, "nix-env", "-qa", pkg)
	return existsByOutput(result, err, func(line string) bool {
		name, _ := splitNameVersion(strings.TrimSpace(line))
		return name == pkg
	})
}

func (n *NixEnvBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, n.CommandManager, false, nil, "nix-env", "-i", pkg)
	return installExitCode(NixEnv, pkg, result, err)
}

// ListInstalled parses `nix-env -q`, one "name-version" token per line.
func (n *NixEnvBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, n.CommandManager, false, nil, "nix-env", "-q")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		token := strings.TrimSpace(line)
		if token == "" {
			continue
		}
		name, version := splitNameVersion(token)
		packages = append(packages, InstalledPackage{Manager: NixEnv, Name: name, Version: version})
	}
	return packages, nil
}
