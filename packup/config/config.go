// Package config loads packup settings from an INI file and the environment.
package config

import (
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/m-217/packup/packup/installer"
)

// Config carries everything the CLI needs to build an orchestrator: which
// host to drive, whether elevation is allowed, and per-package name
// overrides for managers that publish a package under a different name.
type Config struct {
	Hostname  string
	Username  string
	AllowSudo bool

	// Packages maps a package to its manager-specific name overrides,
	// e.g. ripgrep -> {apt: ripgrep, cargo: ripgrep, npm: "@microsoft/ripgrep"}.
	Packages map[string]map[string]string
}

// Default returns the configuration used when no file is given: the local
// host, with elevation controlled by the SUDO environment variable.
func Default() *Config {
	return &Config{
		AllowSudo: sudoFromEnv(),
		Packages:  make(map[string]map[string]string),
	}
}

// Load reads an INI file. The [packup] section holds global settings; every
// other section names a package and maps manager names to override names:
//
//	[packup]
//	hostname = build-01.example.com
//	username = deploy
//	sudo     = true
//
//	[ripgrep]
//	apt = ripgrep
//	brew = ripgrep
//	cargo = ripgrep
//
// File settings win over the SUDO environment variable.
func Load(path string) (*Config, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	c := Default()

	for _, section := range file.Sections() {
		name := section.Name()
		switch name {
		case ini.DefaultSection:
			continue
		case "packup":
			c.Hostname = section.Key("hostname").String()
			c.Username = section.Key("username").String()
			if section.HasKey("sudo") {
				c.AllowSudo = section.Key("sudo").MustBool(false)
			}
		default:
			overrides := make(map[string]string)
			for _, key := range section.Keys() {
				overrides[key.Name()] = key.String()
			}
			c.Packages[name] = overrides
		}
	}

	return c, nil
}

// Ref builds a PackageRef for name, attaching any configured overrides.
func (c *Config) Ref(name string) installer.PackageRef {
	return installer.PackageRef{Name: name, Overrides: c.Packages[name]}
}

func sudoFromEnv() bool {
	switch strings.ToLower(os.Getenv("SUDO")) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
