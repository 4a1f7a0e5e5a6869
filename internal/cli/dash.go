package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sidecar/internal/config"
	"github.com/rileyhilliard/sidecar/internal/errors"
	"github.com/rileyhilliard/sidecar/internal/logger"
	"github.com/rileyhilliard/sidecar/internal/monitor"
	"github.com/rileyhilliard/sidecar/internal/ui"
	"golang.org/x/sys/unix"
)

// dashCommand runs the dashboard until interrupted or a kernel source
// becomes unreadable.
func dashCommand(watchPath string) error {
	cfg, err := loadDashConfig()
	if err != nil {
		return err
	}

	// Stderr shares the terminal with the frame, so stay quiet unless
	// debugging was asked for.
	log := logger.Noop()
	if os.Getenv("SIDECAR_DEBUG") != "" {
		log = logger.NewEnvLogger("sidecar")
	}
	dash := monitor.NewDashboard(cfg, log)

	if watchPath != "" {
		if err := dash.AttachTail(watchPath); err != nil {
			// The dashboard is still useful without the tail window.
			warn := lipgloss.NewStyle().Foreground(ui.ColorWarning)
			fmt.Fprintf(os.Stderr, "%s %v\n", warn.Render(ui.SymbolWarning), err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM)
	defer cancel()

	err = dash.Run(ctx)
	if err == context.Canceled {
		// Interrupted by the user; not a failure.
		return nil
	}
	return err
}

// loadDashConfig loads the config file and folds in the command-line
// overrides, then validates the result.
func loadDashConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return nil, err
	}

	if err := applyOverrides(cfg); err != nil {
		return nil, err
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyOverrides folds the root command's flags over the loaded config.
func applyOverrides(cfg *config.Config) error {
	if refreshFlag != "" {
		d, err := time.ParseDuration(refreshFlag)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("'%s' doesn't look like a refresh interval", refreshFlag),
				"Try something like 500ms, 1s, or 2s")
		}
		cfg.Refresh = d
	}

	if heightFlag > 0 {
		cfg.History.Height = heightFlag
	}

	if debugLinesFlag > 0 {
		cfg.Debug.MaxLines = debugLinesFlag
	}

	if noPowerFlag {
		cfg.Power.Enabled = false
	}

	return nil
}
