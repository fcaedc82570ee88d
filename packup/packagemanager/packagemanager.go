// Package packagemanager implements one backend per package manager behind a
// uniform contract: existence lookup against the manager's index, a
// non-interactive install, and a parsed listing of installed packages. Every
// operation is a single external process invocation through a CommandManager,
// which is also the seam the tests mock.
package packagemanager

import (
	"context"
	"fmt"
	"sort"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// InstalledPackage is one row of a host package inventory. Version is
// manager-dependent and may be empty.
type InstalledPackage struct {
	Manager string
	Name    string
	Version string
}

func (p InstalledPackage) String() string {
	if p.Version == "" {
		return fmt.Sprintf("%s (%s)", p.Name, p.Manager)
	}
	return fmt.Sprintf("%s %s (%s)", p.Name, p.Version, p.Manager)
}

// Backend is one package-manager-specific implementation. Implementations
// are immutable once constructed and hold no state beyond their
// CommandManager.
//
// Exists queries the manager's package index. A false with a nil error means
// the index answered "not found"; a non-nil error means the query itself was
// inconclusive, which callers treat as "not found" for conservative fallback.
// Exists must never be interpreted as "installed locally" except where noted
// on the implementation.
type Backend interface {
	// Name returns the manager name, e.g. "brew" or "cargo".
	Name() string

	// Executable returns the binary the availability probe must find
	// before any other method may be called.
	Executable() string

	Exists(ctx context.Context, pkg string) (bool, error)
	Install(ctx context.Context, pkg string) error
	ListInstalled(ctx context.Context) ([]InstalledPackage, error)
}

// Manager names, as used by the catalog, the config file and the registry.
const (
	Brew   = "brew"
	Port   = "port"
	Fink   = "fink"
	Apt    = "apt"
	Nala   = "nala"
	Dnf    = "dnf"
	Yum    = "yum"
	Apk    = "apk"
	Pacman = "pacman"
	Yay    = "yay"
	Paru   = "paru"
	NixEnv = "nix-env"
	Cargo  = "cargo"
	Npm    = "npm"
	Pip    = "pip"
	Gem    = "gem"
	Uv     = "uv"
	Pnpm   = "pnpm"
	Bun    = "bun"
)

// Factory constructs a backend bound to a CommandManager.
type Factory func(cm.CommandManager) Backend

var registry = map[string]Factory{
	Brew:   func(c cm.CommandManager) Backend { return &BrewBackend{CommandManager: c} },
	Port:   func(c cm.CommandManager) Backend { return &PortBackend{CommandManager: c} },
	Fink:   func(c cm.CommandManager) Backend { return &FinkBackend{CommandManager: c} },
	Apt:    func(c cm.CommandManager) Backend { return &AptBackend{CommandManager: c} },
	Nala:   func(c cm.CommandManager) Backend { return &NalaBackend{CommandManager: c} },
	Dnf:    func(c cm.CommandManager) Backend { return &DnfBackend{CommandManager: c} },
	Yum:    func(c cm.CommandManager) Backend { return &YumBackend{CommandManager: c} },
	Apk:    func(c cm.CommandManager) Backend { return &ApkBackend{CommandManager: c} },
	Pacman: func(c cm.CommandManager) Backend { return newArchBackend(Pacman, c) },
	Yay:    func(c cm.CommandManager) Backend { return newArchBackend(Yay, c) },
	Paru:   func(c cm.CommandManager) Backend { return newArchBackend(Paru, c) },
	NixEnv: func(c cm.CommandManager) Backend { return &NixEnvBackend{CommandManager: c} },
	Cargo:  func(c cm.CommandManager) Backend { return &CargoBackend{CommandManager: c} },
	Npm:    func(c cm.CommandManager) Backend { return &NpmBackend{CommandManager: c} },
	Pip:    func(c cm.CommandManager) Backend { return &PipBackend{CommandManager: c} },
	Gem:    func(c cm.CommandManager) Backend { return &GemBackend{CommandManager: c} },
	Uv:     func(c cm.CommandManager) Backend { return &UvBackend{CommandManager: c} },
	Pnpm:   func(c cm.CommandManager) Backend { return &PnpmBackend{CommandManager: c} },
	Bun:    func(c cm.CommandManager) Backend { return &BunBackend{CommandManager: c} },
}

// New returns a backend for the named manager, or false if the name is not a
// known manager.
func New(name string, mgr cm.CommandManager) (Backend, bool) {
	factory, ok := registry[name]
	if !ok {
		return nil, false
	}
	return factory(mgr), true
}

// Known returns every registered manager name, sorted.
func Known() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
