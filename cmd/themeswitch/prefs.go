package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/prefs"
)

var prefsFlags struct {
	yes bool
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect or clear stored preferences",
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preferences",
	Args:  cobra.NoArgs,
	RunE:  runPrefsShow,
}

var prefsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the stored selection and remember setting",
	Args:  cobra.NoArgs,
	RunE:  runPrefsClear,
}

func init() {
	prefsClearCmd.Flags().BoolVarP(&prefsFlags.yes, "yes", "y", false, "Do not ask for confirmation")
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsClearCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "store: %s\n", e.cfg.Store)
	for _, k := range []string{prefs.KeySaveSelection, prefs.KeySelection} {
		v, ok := e.store.Read(k)
		if !ok {
			v = "(absent)"
		}
		fmt.Fprintf(out, "%s: %s\n", k, v)
	}
	return nil
}

func runPrefsClear(cmd *cobra.Command, args []string) error {
	if !prefsFlags.yes {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return errors.New("refusing to clear preferences without a terminal, pass --yes")
		}

		confirm := false
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title("Clear stored theme preferences?").
					Description("The remembered theme and the remember setting are removed.").
					Value(&confirm),
			),
		).WithTheme(huh.ThemeCharm()).Run()
		if err != nil {
			return err
		}
		if !confirm {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing cleared")
			return nil
		}
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.store.Delete(prefs.KeySaveSelection)
	e.store.Delete(prefs.KeySelection)
	fmt.Fprintln(cmd.OutOrStdout(), "Preferences cleared")
	return nil
}
