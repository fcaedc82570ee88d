package packagemanager

import (
	"context"
	"strings"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// PipBackend drives pip.
type PipBackend struct {
	CommandManager cm.CommandManager
}

func (p *PipBackend) Name() string       { return Pip }
func (p *PipBackend) Executable() string { return "pip" }

func (p *PipBackend) Exists(ctx context.Context, pkg string) (bool, error) {
	// `pip index versions` exits non-zero when PyPI has no such project.
	result, err := run(ctx, p.CommandManager, false, nil, "pip", "index", "versions", pkg)
	return existsByExitCode(result, err)
}

func (p *PipBackend) Install(ctx context.Context, pkg string) error {
	result, err := run(ctx, p.CommandManager, false, nil, "pip", "install", pkg)
	return installExitCode(Pip, pkg, result, err)
}

// ListInstalled parses pip's fixed-width two-column table:
//
//	Package    Version
//	---------- -------
//	requests   2.31.0
//
// The column header and the dashed separator row are skipped.
func (p *PipBackend) ListInstalled(ctx context.Context) ([]InstalledPackage, error) {
	result, err := run(ctx, p.CommandManager, false, nil, "pip", "list")
	if err != nil {
		return nil, err
	}

	var packages []InstalledPackage
	for _, line := range outputLines(result.STDOUT) {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[0] == "Package" || strings.HasPrefix(fields[0], "--") {
			continue
		}
		packages = append(packages, InstalledPackage{Manager: Pip, Name: fields[0], Version: fields[1]})
	}
	return packages, nil
}
