package main

import (
	"github.com/spf13/cobra"

	"github.com/gokatas/katas/internal/config"
)

func newFixturesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Print the effective configuration, including demo fixtures, as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			out, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
