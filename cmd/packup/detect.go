package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m-217/packup/packup/catalog"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected platform and its package manager chain",
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}

	host := env.host
	fmt.Printf("OS:     %s\n", host.OS)
	if host.Distro != "" {
		fmt.Printf("Distro: %s\n", host.Distro)
	}
	if host.Family != "" {
		fmt.Printf("Family: %s\n", host.Family)
	}

	fmt.Printf("\nCandidate managers, in priority order:\n")
	for _, name := range catalog.Candidates(host) {
		marker := " "
		if env.prober.Available(executableFor(name, env)) {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, name)
	}
	fmt.Printf("\n* = available on this host\n")
	return nil
}

func executableFor(name string, env *environment) string {
	for _, backend := range env.backends {
		if backend.Name() == name {
			return backend.Executable()
		}
	}
	return name
}
