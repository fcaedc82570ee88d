// Package catalog maps a detected host to an ordered list of candidate
// package managers: one OS-native chain followed by the universal
// per-language managers, in fixed priority order.
package catalog

import (
	pm "github.com/m-217/packup/packup/packagemanager"
)

// HostContext describes the host the orchestrator is working against.
// Computed once per invocation and read-only afterward.
type HostContext struct {
	OS     string // "linux", "darwin"
	Distro string // distro ID, Linux only (e.g. "ubuntu")
	Family string // canonical distro family, Linux only (e.g. "debian")
}

// Distro families the native chains are keyed on.
const (
	FamilyDebian = "debian"
	FamilyRHEL   = "rhel"
	FamilyArch   = "arch"
	FamilyAlpine = "alpine"
)

// nativeChains holds the OS-native manager preference per family. Within a
// chain the preferred manager comes first: nala over apt, dnf over yum, and
// the AUR helpers over bare pacman because they also resolve AUR packages.
var nativeChains = map[string][]string{
	FamilyDebian: {pm.Nala, pm.Apt},
	FamilyRHEL:   {pm.Dnf, pm.Yum},
	FamilyArch:   {pm.Yay, pm.Paru, pm.Pacman},
	FamilyAlpine: {pm.Apk},
}

// darwinChain is the macOS-native preference: Homebrew and MacPorts are the
// common choices, Fink is kept as a legacy fallback.
var darwinChain = []string{pm.Brew, pm.Port, pm.Fink}

// universal managers are appended after the native chain regardless of OS,
// because a package may only exist in a language-specific registry.
var universal = []string{pm.Cargo, pm.Npm, pm.Pip, pm.Gem, pm.Uv, pm.Pnpm, pm.Bun, pm.NixEnv}

// Candidates returns the manager names to try for this host, in priority
// order. Availability of each manager's executable is deliberately not
// checked here; the orchestrator probes as it walks so it can report
// unavailable backends.
func Candidates(host HostContext) []string {
	var chain []string
	switch host.OS {
	case "darwin":
		chain = darwinChain
	case "linux":
		chain = nativeChains[host.Family]
	}

	candidates := make([]string, 0, len(chain)+len(universal))
	candidates = append(candidates, chain...)
	candidates = append(candidates, universal...)
	return candidates
}
