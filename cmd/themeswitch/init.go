package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/config"
)

var initFlags struct {
	global bool
	force  bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to a config file",
	Long: `Write the effective configuration, including flags, to themeswitch.yml in the
current directory, or to the global config file with --global.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.global, "global", false, "Write "+config.GlobalPath())
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path, write := config.ProjectPath(), config.WriteProject
	if initFlags.global {
		path, write = config.GlobalPath(), config.WriteGlobal
	}

	if _, err := os.Stat(path); err == nil && !initFlags.force {
		return fmt.Errorf("%s already exists, pass --force to overwrite", path)
	}
	if err := write(cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
