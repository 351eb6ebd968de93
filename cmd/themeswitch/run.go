package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/hooks"
	"github.com/mark3labs/themeswitch/internal/tui"
)

var runFlags struct {
	color string
}

func init() {
	rootCmd.Flags().StringVar(&runFlags.color, "color", "auto", "Color profile: auto, truecolor, 256, 16 or none")
}

// parseColorProfile maps a --color value to a profile. ok is false for auto.
func parseColorProfile(s string) (p colorprofile.Profile, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return colorprofile.Unknown, false, nil
	case "truecolor", "24bit":
		return colorprofile.TrueColor, true, nil
	case "256", "ansi256":
		return colorprofile.ANSI256, true, nil
	case "16", "ansi":
		return colorprofile.ANSI, true, nil
	case "none", "ascii":
		return colorprofile.ASCII, true, nil
	}
	return colorprofile.Unknown, false, fmt.Errorf("unknown color profile %q (valid: auto, truecolor, 256, 16, none)", s)
}

func runTUI(cmd *cobra.Command, args []string) error {
	profile, forced, err := parseColorProfile(runFlags.color)
	if err != nil {
		return err
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, cancel := context.WithCancel(commandContext(cmd))
	defer cancel()

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if forced {
		opts = append(opts, tea.WithColorProfile(profile))
	}

	app := tui.NewApp(ctx, e.cfg, e.store, e.bus)
	hooksCfg, workDir, err := loadHooks()
	if err != nil {
		return err
	}
	app.SetHooks(hooksCfg, workDir)

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadHooks reads the hooks file from the working directory.
func loadHooks() (*hooks.Config, string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := hooks.LoadConfig(workDir)
	if err != nil {
		return nil, "", err
	}
	return cfg, workDir, nil
}
