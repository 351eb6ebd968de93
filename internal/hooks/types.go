package hooks

// Config is the top-level configuration loaded from .themeswitch.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig lists the commands run per event.
type HooksConfig struct {
	// OnThemeChange runs, in order, after every selection.
	OnThemeChange []*HookConfig `yaml:"on_theme_change"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string `yaml:"command"`
	Timeout int    `yaml:"timeout"` // seconds, default 10
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 10
