package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/hooks"
	"github.com/mark3labs/themeswitch/internal/switcher"
)

var selectCmd = &cobra.Command{
	Use:   "select <theme>",
	Short: "Select a theme without opening the dialog",
	Long: `Select a theme without opening the dialog.

The selection is stored when remembering is enabled, announced on the event
bus as theme.changed and passed to the hooks in ` + hooks.ConfigFileName + `.`,
	Args: cobra.ExactArgs(1),
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	w := switcher.Attach(switcher.Config{
		Options:       e.cfg.Options,
		SaveSelection: e.cfg.SaveSelection,
	}, e.store, e.bus, nil)

	if err := w.SelectName(args[0]); err != nil {
		return err
	}
	if err := e.bus.Flush(); err != nil {
		return fmt.Errorf("failed to flush events: %w", err)
	}

	hooksCfg, workDir, err := loadHooks()
	if err != nil {
		return err
	}
	if hooksCfg != nil {
		vars := hooks.Variables{Theme: w.Selected(), Scope: e.cfg.Scope}
		out, err := hooks.ExecuteAll(commandContext(cmd), hooksCfg.Hooks.OnThemeChange, workDir, vars)
		fmt.Fprint(cmd.OutOrStdout(), out)
		if err != nil {
			return err
		}
	}

	saved := "not remembered"
	if w.State().SaveSelection {
		saved = "remembered"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Selected %s (%s)\n", w.Selected(), saved)
	return nil
}
