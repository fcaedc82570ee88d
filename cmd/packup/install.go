package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m-217/packup/packup/installer"
)

var installCmd = &cobra.Command{
	Use:   "install [package...]",
	Short: "Install packages through the first manager that can serve them",
	Long: `Install each package through the host's package managers, walking the
platform's candidate chain in priority order and falling back to the next
manager when one fails.

Examples:
  packup install ripgrep
  packup install jq fd bat --sudo
  packup install ripgrep --hostname build-01.example.com --username deploy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}

	refs := make([]installer.PackageRef, 0, len(args))
	for _, name := range args {
		refs = append(refs, cfg.Ref(name))
	}

	orch := installer.New(env.backends, env.prober, logrusAdapter{log})
	outcomes := orch.EnsureAll(cmd.Context(), refs)

	failed := 0
	for _, outcome := range outcomes {
		switch outcome.State {
		case installer.StateAlreadyPresent:
			fmt.Printf("%s: already present via %s\n", outcome.Package, outcome.Backend)
		case installer.StateInstalled:
			fmt.Printf("%s: installed via %s\n", outcome.Package, outcome.Backend)
		default:
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", outcome.Package, outcome.Err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d packages could not be installed", failed, len(outcomes))
	}
	return nil
}
