package catalog

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	cm "github.com/m-217/packup/packup/commandmanager"
)

// Detector computes a HostContext. One implementation inspects the local
// machine, the other asks a remote host through its CommandManager.
type Detector interface {
	Detect(ctx context.Context) (HostContext, error)
}

// familyAliases maps distro IDs and platform families to the canonical
// family names the catalog keys on.
var familyAliases = map[string]string{
	"debian":   FamilyDebian,
	"ubuntu":   FamilyDebian,
	"mint":     FamilyDebian,
	"pop":      FamilyDebian,
	"raspbian": FamilyDebian,
	"rhel":     FamilyRHEL,
	"redhat":   FamilyRHEL,
	"centos":   FamilyRHEL,
	"rocky":    FamilyRHEL,
	"alma":     FamilyRHEL,
	"fedora":   FamilyRHEL,
	"arch":     FamilyArch,
	"manjaro":  FamilyArch,
	"endeavouros": FamilyArch,
	"alpine":   FamilyAlpine,
}

func canonicalFamily(s string) string {
	return familyAliases[strings.ToLower(strings.TrimSpace(s))]
}

// LocalDetector detects the machine this process runs on.
type LocalDetector struct{}

func (LocalDetector) Detect(ctx context.Context) (HostContext, error) {
	info := HostContext{OS: runtime.GOOS}
	if info.OS != "linux" {
		return info, nil
	}

	platform, family, _, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return HostContext{}, ctx.Err()
		}
		// Distro detection failing still leaves the universal managers
		// usable, so this is not fatal.
		return info, nil
	}

	info.Distro = strings.ToLower(platform)
	info.Family = canonicalFamily(family)
	if info.Family == "" {
		info.Family = canonicalFamily(platform)
	}
	return info, nil
}

// CommandDetector detects whatever host the CommandManager targets, for
// remote bootstrap runs.
type CommandDetector struct {
	CommandManager cm.CommandManager
}

func (d *CommandDetector) Detect(ctx context.Context) (HostContext, error) {
	result, err := d.CommandManager.Run(ctx, cm.CommandConfig{Command: "uname", Args: []string{"-s"}})
	if err != nil {
		return HostContext{}, err
	}

	var info HostContext
	switch strings.TrimSpace(result.STDOUT) {
	case "Darwin":
		info.OS = "darwin"
		return info, nil
	case "Linux":
		info.OS = "linux"
	default:
		info.OS = strings.ToLower(strings.TrimSpace(result.STDOUT))
		return info, nil
	}

	release, err := d.CommandManager.Run(ctx, cm.CommandConfig{Command: "cat", Args: []string{"/etc/os-release"}})
	if err != nil || release.ExitCode != 0 {
		return info, nil
	}

	id, idLike := parseOSRelease(release.STDOUT)
	info.Distro = id
	info.Family = canonicalFamily(id)
	if info.Family == "" {
		for _, like := range idLike {
			if family := canonicalFamily(like); family != "" {
				info.Family = family
				break
			}
		}
	}
	return info, nil
}

// parseOSRelease pulls ID and ID_LIKE out of an os-release file.
func parseOSRelease(out string) (id string, idLike []string) {
	for _, line := range strings.Split(out, "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		switch key {
		case "ID":
			id = strings.ToLower(value)
		case "ID_LIKE":
			idLike = strings.Fields(strings.ToLower(value))
		}
	}
	return id, idLike
}
