package main

import (
	"context"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/logger"
	"github.com/mark3labs/themeswitch/internal/tui/theme"
)

const logoText = "◐ themeswitch"

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "themeswitch",
	Short: "Keyboard-driven theme switcher with remembered selection",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

// renderLogo colors the logo with a gradient across the dark palette.
func renderLogo() string {
	t := theme.NewDark()
	runes := []rune(logoText)
	var b strings.Builder
	for i, r := range runes {
		pos := float64(i) / float64(max(len(runes)-1, 1))
		c := theme.InterpolateColor(t.Primary, t.Secondary, pos)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(string(r)))
	}
	return b.String()
}

func init() {
	rootCmd.Long = renderLogo() + `

themeswitch presents a set of themes as a keyboard-accessible radio group in a
modal dialog. Arrow keys browse, enter selects, tab stays inside the dialog and
esc returns focus to the button that opened it. The selection is remembered
across sessions unless you turn that off.

Preferences live in a JSON file, an SQLite database or an embedded NATS
JetStream bucket, chosen with --store.`

	addConfigFlags(rootCmd)

	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(hooksCmd)
	rootCmd.AddCommand(openCmd)
}
