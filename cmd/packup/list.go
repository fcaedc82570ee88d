package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m-217/packup/packup/inventory"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed packages across every available manager",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := buildEnvironment(cmd.Context())
	if err != nil {
		return err
	}

	agg := inventory.New(env.backends, env.prober, logrusAdapter{log})
	inv, err := agg.Collect(cmd.Context())
	if err != nil {
		// Failed backends already reported; the partial inventory still prints.
		log.WithError(err).Warn("Some backends failed to list")
	}

	for _, entry := range inv {
		fmt.Println(entry)
	}
	log.WithField("count", len(inv)).Debug("Inventory collected")
	return nil
}
