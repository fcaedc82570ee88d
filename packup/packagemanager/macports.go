package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// PortBackend drives MacPorts. Installs need elevation.
type PortBackend struct {
	CommandManager cm.CommandManager
}

func (p *PortBackend) Name() string       { return Port }
func (p *PortBackend) Executable() string { return "port" }

func (p *PortBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	result, err := run(ctx, p.CommandManager, false, nil, "port", "info", pkg)
	return existsByExitCode(result, err)
}

func (p *PortBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, p.CommandManager, true, nil, "port", "-N", "install", pkg)
	return installExitCode(Port, pkg, result, err)
}

// ListInstalled parses `port installed`:
//
//	The following ports are currently installed:
//	  ripgrep @14.1.0_0 (active)
func (p *PortBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, p.CommandManager, false, nil, "port", "installed")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		fields := strings.Fields(line)
		if len(fields) < 2 || !strings.HasPrefix(fields[1], "@") {
			// Header, legend or "None of the specified ports" lines.
			continue
		}
		version := strings.TrimPrefix(fields[1], "@")
		if i := strings.IndexByte(version, '_'); i > 0 {
			version = version[:i] // drop the port revision suffix
		}
		packages = append(packages, InstalledPackage{Manager: Port, Name: fields[0], Version: version})
	}
	return packages, nil
}
