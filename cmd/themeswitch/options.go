package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/switcher"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the configured themes",
	Long:  "List the configured themes in navigation order. The one that would be selected on start is marked.",
	Args:  cobra.NoArgs,
	RunE:  runOptions,
}

func runOptions(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	w := switcher.Attach(switcher.Config{
		Options:       e.cfg.Options,
		SaveSelection: e.cfg.SaveSelection,
	}, e.store, nil, nil)

	out := cmd.OutOrStdout()
	for _, o := range w.Registry().Options() {
		mark := " "
		if o.Selected {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %s\n", mark, o.Name)
	}
	return nil
}
