package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/passgen/internal/config"
)

func newConfigCmd(app *AppContext) *cobra.Command {
	var showPath bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showPath {
				path, _, err := config.ResolvePath(app.flags.configPath, app.lookupEnv)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			if err := app.Load(cmd.Context(), false); err != nil {
				return err
			}
			data, err := config.Marshal(app.Config)
			if err != nil {
				return fmt.Errorf("render configuration: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&showPath, "path", false, "Print the resolved configuration file path instead")
	return cmd
}
