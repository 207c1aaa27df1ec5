package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlcomponent/internal/config"
	"github.com/vango-dev/htmlcomponent/internal/errors"
)

func initCmd(c *cli) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create htmlc.json with default settings",
		Args:  cobra.MaximumNArgs(1),
		// Runs without an existing configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			path := filepath.Join(dir, config.ConfigFileName)

			if _, err := os.Stat(path); err == nil && !force {
				return errors.New(errors.CodeConfigWrite).
					WithDetail(path + " already exists").
					WithSuggestion("Use --force to overwrite it")
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return errors.New(errors.CodeConfigWrite).Wrap(err)
			}
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			c.success("Created %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
