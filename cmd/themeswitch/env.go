package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	"github.com/mark3labs/themeswitch/internal/config"
	"github.com/mark3labs/themeswitch/internal/events"
	"github.com/mark3labs/themeswitch/internal/logger"
	inats "github.com/mark3labs/themeswitch/internal/nats"
	"github.com/mark3labs/themeswitch/internal/prefs"
)

var configFlags struct {
	options  []string
	store    string
	dataDir  string
	scope    string
	natsURL  string
	noSave   bool
	logLevel string
	logFile  string
}

func addConfigFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringSliceVarP(&configFlags.options, "option", "o", nil, "Theme name, repeatable (default: auto, light, dark)")
	f.StringVar(&configFlags.store, "store", "", "Preference store: file, sqlite, nats or memory")
	f.StringVar(&configFlags.dataDir, "data-dir", "", "Directory for stored preferences")
	f.StringVar(&configFlags.scope, "scope", "", "Event bus scope")
	f.StringVar(&configFlags.natsURL, "nats-url", "", "Connect to this NATS server instead of the embedded one")
	f.BoolVar(&configFlags.noSave, "no-save", false, "Do not remember the selection unless already enabled")
	f.StringVar(&configFlags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	f.StringVar(&configFlags.logFile, "log-file", "", "Write logs to this file")
}

// loadConfig applies CLI flags on top of the loaded configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("option") {
		cfg.Options = configFlags.options
	}
	if flags.Changed("store") {
		cfg.Store = configFlags.store
	}
	if flags.Changed("data-dir") {
		cfg.DataDir = configFlags.dataDir
	}
	if flags.Changed("scope") {
		cfg.Scope = configFlags.scope
	}
	if flags.Changed("nats-url") {
		cfg.NATSURL = configFlags.natsURL
	}
	if flags.Changed("no-save") {
		cfg.SaveSelection = !configFlags.noSave
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = configFlags.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = configFlags.logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// env is everything a command needs: config, event bus and preference store.
type env struct {
	cfg   *config.Config
	rt    *inats.Runtime
	bus   *events.Bus
	store prefs.Store
}

// setup loads configuration and brings up logging, the embedded NATS server
// and the preference store, in that order.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}

	// The first process for a data directory owns the server; later ones
	// join it, so events reach every running view.
	var rt *inats.Runtime
	if cfg.NATSURL != "" {
		rt, err = inats.Connect(cfg.NATSURL)
	} else {
		rt, err = inats.Start(cfg.DataDir)
	}
	if err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, rt: rt, bus: events.NewBus(rt.Conn, cfg.Scope)}

	var bucket jetstream.KeyValue
	if cfg.Store == config.StoreNATS {
		ctx, cancel := context.WithTimeout(commandContext(cmd), 5*time.Second)
		bucket, err = rt.PreferenceBucket(ctx)
		cancel()
		if err != nil {
			e.Close()
			return nil, err
		}
	}

	e.store, err = prefs.Open(cfg, bucket)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	logger.Debug("Environment ready: store=%s scope=%s", cfg.Store, cfg.Scope)
	return e, nil
}

// Close releases the store and shuts NATS down.
func (e *env) Close() {
	if c, ok := e.store.(io.Closer); ok {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close store: %v", err)
		}
	}
	if err := e.rt.Close(); err != nil {
		logger.Warn("Failed to shut down NATS: %v", err)
	}
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
