package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/ghostlygrid/internal/registry"
)

func newEnvsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List registered environment ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, id := range registry.IDs() {
				spec, _ := registry.Lookup(id)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tmax_steps=%d\n", id, spec.MaxEpisodeSteps)
			}
			return nil
		},
	}
}
