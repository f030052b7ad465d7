package cmd

import (
	"fmt"
	"os"

	"termfolio/internal/config"
	"termfolio/internal/errors"

	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Create or inspect the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	cmd.AddCommand(newConfigShowCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the default settings",
		Long: `Write a configuration file with the default settings. The format is TOML
when the path ends in .toml and YAML otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return errors.Wrap(err, "cannot determine config path")
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.NewConfigError("config file already exists (use --force to overwrite)", path, errors.InvalidConfig, nil)
			}

			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg, "config.yaml")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
