package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/token-bubbles/config"
)

func configCmd(opts *options) *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if initFile {
				path := opts.configPath
				if path == "" {
					path = config.Path()
				}
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("config exists: %s", path)
				}
				if err := config.Save(config.Default(), path); err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "%s %s\n", Good.Sprint("wrote"), path)
				return nil
			}

			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return cfg.Write(os.Stdout)
		},
	}

	cmd.Flags().BoolVar(&initFile, "init", false, "write the default config file if none exists")
	return cmd
}
