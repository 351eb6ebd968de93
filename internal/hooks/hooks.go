// Package hooks runs user commands when the theme changes, so other programs
// (editors, terminals, window managers) can follow the selection.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mark3labs/themeswitch/internal/logger"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".themeswitch.hooks.yml"

// LoadConfig loads the hooks configuration from workDir. A missing file
// means no hooks and returns nil, nil.
func LoadConfig(workDir string) (*Config, error) {
	path := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", path)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded %d theme change hooks from %s", len(cfg.Hooks.OnThemeChange), path)
	return &cfg, nil
}

// Variables are substituted into hook commands and exported to their
// environment.
type Variables struct {
	Theme string
	Scope string
}

func (v Variables) expand(command string) string {
	return strings.NewReplacer(
		"{{theme}}", v.Theme,
		"{{scope}}", v.Scope,
	).Replace(command)
}

func (v Variables) environ() []string {
	return append(os.Environ(),
		"THEMESWITCH_THEME="+v.Theme,
		"THEMESWITCH_SCOPE="+v.Scope,
	)
}

// Execute runs one hook through sh and returns its stdout. Failures and
// timeouts return an error alongside whatever output was produced.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}

	command := vars.expand(hook.Command)
	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	cmd.Env = vars.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("Executing hook: %s", command)
	err := cmd.Run()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
		return stdout.String(), fmt.Errorf("hook timed out after %ds: %s", timeout, command)
	}
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return stdout.String(), fmt.Errorf("hook %q failed: %s", command, msg)
	}

	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
	}
	return stdout.String(), nil
}

// ExecuteAll runs hooks in order and joins their output. A failing hook is
// logged and the rest still run; only cancellation stops early.
func ExecuteAll(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables) (string, error) {
	var outputs []string
	var failed error

	for _, h := range hooks {
		out, err := Execute(ctx, h, workDir, vars)
		if ctx.Err() != nil {
			return strings.Join(outputs, "\n"), ctx.Err()
		}
		if err != nil {
			logger.Warn("%v", err)
			failed = errors.Join(failed, err)
		}
		if out != "" {
			outputs = append(outputs, out)
		}
	}
	return strings.Join(outputs, "\n"), failed
}
