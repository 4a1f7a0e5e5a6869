package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/sidecar/internal/errors"
)

// minRefresh is the fastest tick the loop will accept. Faster than this and
// the sampler reads its own rendering overhead more than the system.
const minRefresh = 50 * time.Millisecond

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but sidecar only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest sidecar: https://github.com/rileyhilliard/sidecar/releases")
	}

	if cfg.Refresh < minRefresh {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Refresh interval %s is too fast", cfg.Refresh),
			fmt.Sprintf("Use %s or slower; the default is 500ms", minRefresh))
	}

	if cfg.History.Height < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History height %d is too small to draw anything", cfg.History.Height),
			"Set history.height to at least 1 (default 10)")
	}

	if cfg.History.Divisor < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History divisor %d would never age the ring", cfg.History.Divisor),
			"Set history.divisor to at least 1 (default 4)")
	}

	if cfg.Graph.MinWidth < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Graph min width %d leaves no columns to draw in", cfg.Graph.MinWidth),
			"Set graph.min_width to at least 1 (default 20)")
	}

	if cfg.History.Capacity < cfg.Graph.MinWidth {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("History capacity %d is smaller than graph min width %d", cfg.History.Capacity, cfg.Graph.MinWidth),
			"The ring must hold at least one value per drawable column; raise history.capacity")
	}

	if cfg.Debug.MaxLines < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Debug max lines %d would show nothing", cfg.Debug.MaxLines),
			"Set debug.max_lines to at least 1 (default 12)")
	}

	if cfg.Graph.Margin < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Graph margin %d is negative", cfg.Graph.Margin),
			"Set graph.margin to 0 or more (default 12)")
	}

	return nil
}
