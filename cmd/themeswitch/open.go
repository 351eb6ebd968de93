package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/tui"
)

var openFlags struct {
	opener string
}

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the theme dialog in a running themeswitch",
	Long: `Open the theme dialog in a running themeswitch that shares this data directory
(or --nats-url) and scope. Focus returns to --opener when the dialog closes.`,
	Args: cobra.NoArgs,
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVar(&openFlags.opener, "opener", tui.ButtonTheme, "Element id that focus returns to on close")
}

func runOpen(cmd *cobra.Command, args []string) error {
	if openFlags.opener == "" {
		return errors.New("--opener must not be empty")
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if e.rt.Primary && e.cfg.NATSURL == "" {
		return fmt.Errorf("no running themeswitch found for data directory %s", e.cfg.DataDir)
	}

	if err := e.bus.PublishOpen(openFlags.opener); err != nil {
		return err
	}
	if err := e.bus.Flush(); err != nil {
		return fmt.Errorf("failed to flush events: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Requested the theme dialog in scope %s (opener %s)\n", e.bus.Scope(), openFlags.opener)
	return nil
}
