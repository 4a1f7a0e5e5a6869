package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/sidecar/internal/config"
	"github.com/rileyhilliard/sidecar/internal/errors"
	"github.com/rileyhilliard/sidecar/internal/ui"
	"gopkg.in/yaml.v3"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, write stock defaults
}

// configView mirrors Config for YAML output. yaml.Marshal renders
// time.Duration as integer nanoseconds, so the refresh interval goes
// through this view as a human-readable string.
type configView struct {
	Version int                  `yaml:"version"`
	Refresh string               `yaml:"refresh"`
	History config.HistoryConfig `yaml:"history"`
	Debug   config.DebugConfig   `yaml:"debug"`
	Graph   config.GraphConfig   `yaml:"graph"`
	Power   config.PowerConfig   `yaml:"power"`
}

// Init creates a new .sidecar.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !opts.NonInteractive {
		refresh := cfg.Refresh.String()
		height := strconv.Itoa(cfg.History.Height)

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Refresh interval").
					Description("How often the dashboard samples and repaints").
					Placeholder("500ms").
					Value(&refresh).
					Validate(func(s string) error {
						d, err := time.ParseDuration(strings.TrimSpace(s))
						if err != nil {
							return fmt.Errorf("use a duration like 500ms or 1s")
						}
						if d < 50*time.Millisecond {
							return fmt.Errorf("50ms is the floor; faster and the dashboard measures itself")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Graph height").
					Description("Rows in the history graph").
					Placeholder("10").
					Value(&height).
					Validate(func(s string) error {
						n, err := strconv.Atoi(strings.TrimSpace(s))
						if err != nil || n < 1 {
							return fmt.Errorf("use a whole number of rows, at least 1")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewConfirm().
					Title("Read battery and AC state?").
					Value(&cfg.Power.Enabled),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Set CI=1 or use --force for a stock config without prompts")
		}

		// Validated above, so these cannot fail.
		cfg.Refresh, _ = time.ParseDuration(strings.TrimSpace(refresh))
		cfg.History.Height, _ = strconv.Atoi(strings.TrimSpace(height))
	}

	view := configView{
		Version: cfg.Version,
		Refresh: cfg.Refresh.String(),
		History: cfg.History,
		Debug:   cfg.Debug,
		Graph:   cfg.Graph,
		Power:   cfg.Power,
	}

	data, err := yaml.Marshal(view)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# sidecar configuration
# Run 'sidecar' to start the dashboard, or 'sidecar <file>' to tail a
# file beneath it. 'sidecar doctor' checks this machine.

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Println("  sidecar                  - Start the dashboard")
	fmt.Println("  sidecar /var/log/syslog  - Dashboard with a log tail")
	fmt.Println("  sidecar doctor           - Check this machine")

	return nil
}

// initCommand is the implementation called by the cobra command.
func initCommand(force bool) error {
	return Init(InitOptions{
		Overwrite:      force,
		NonInteractive: nonInteractive(),
	})
}

// nonInteractive reports whether prompts should be skipped, either by
// request or because there is no one to answer them.
func nonInteractive() bool {
	return os.Getenv("CI") != "" || os.Getenv("SIDECAR_NON_INTERACTIVE") != ""
}
