package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/hooks"
)

const hooksTemplate = `version: 1
hooks:
  # Commands run after every selection. {{theme}} and {{scope}} are replaced,
  # and THEMESWITCH_THEME / THEMESWITCH_SCOPE are set in the environment.
  on_theme_change: []
  #  - command: "echo switched to {{theme}}"
  #    timeout: 10
`

var hooksCmd = &cobra.Command{
	Use:   "hooks",
	Short: "Manage the commands run when the theme changes",
}

var hooksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured theme change hooks",
	Args:  cobra.NoArgs,
	RunE:  runHooksList,
}

var hooksRunCmd = &cobra.Command{
	Use:   "run <theme>",
	Short: "Run the hooks for a theme without selecting it",
	Args:  cobra.ExactArgs(1),
	RunE:  runHooksRun,
}

var hooksEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open " + hooks.ConfigFileName + " in $EDITOR, creating it if needed",
	Args:  cobra.NoArgs,
	RunE:  runHooksEdit,
}

func init() {
	hooksCmd.AddCommand(hooksListCmd)
	hooksCmd.AddCommand(hooksRunCmd)
	hooksCmd.AddCommand(hooksEditCmd)
}

func runHooksList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadHooks()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if cfg == nil || len(cfg.Hooks.OnThemeChange) == 0 {
		fmt.Fprintln(out, "No hooks configured")
		return nil
	}
	for _, h := range cfg.Hooks.OnThemeChange {
		timeout := h.Timeout
		if timeout <= 0 {
			timeout = hooks.DefaultTimeout
		}
		fmt.Fprintf(out, "%s (timeout %ds)\n", h.Command, timeout)
	}
	return nil
}

func runHooksRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	hooksCfg, workDir, err := loadHooks()
	if err != nil {
		return err
	}
	if hooksCfg == nil {
		return fmt.Errorf("no %s in %s", hooks.ConfigFileName, workDir)
	}

	vars := hooks.Variables{Theme: args[0], Scope: cfg.Scope}
	out, err := hooks.ExecuteAll(commandContext(cmd), hooksCfg.Hooks.OnThemeChange, workDir, vars)
	fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func runHooksEdit(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	path := filepath.Join(workDir, hooks.ConfigFileName)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, []byte(hooksTemplate), 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
	}

	c, err := editor.Command("themeswitch", path)
	if err != nil {
		return fmt.Errorf("failed to prepare editor: %w", err)
	}
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("editor exited: %w", err)
	}

	// Catch YAML mistakes before the next selection does.
	if _, err := hooks.LoadConfig(workDir); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return nil
}
