package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .sidecar.yaml configuration file.
// Every knob defaults to the values the dashboard shipped with, so a
// missing config file is never an error.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Refresh is the tick period of the sampling-render loop.
	Refresh time.Duration `yaml:"refresh" mapstructure:"refresh"`

	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Debug   DebugConfig   `yaml:"debug" mapstructure:"debug"`
	Graph   GraphConfig   `yaml:"graph" mapstructure:"graph"`
	Power   PowerConfig   `yaml:"power" mapstructure:"power"`
}

// HistoryConfig controls the rolling-history ring and its rendering.
type HistoryConfig struct {
	// Height is the number of graph rows above the baseline; the overlay
	// draws Height+1 rows.
	Height int `yaml:"height" mapstructure:"height"`

	// Divisor is how many sampling ticks pass between ring aging steps,
	// so the ring spans Capacity*Divisor ticks of history.
	Divisor int `yaml:"divisor" mapstructure:"divisor"`

	// Capacity is the number of ring slots; also the upper bound for the
	// graph width on very wide terminals.
	Capacity int `yaml:"capacity" mapstructure:"capacity"`
}

// DebugConfig controls the tail-follow window.
type DebugConfig struct {
	// MaxLines bounds the tail FIFO; the oldest line is evicted first.
	MaxLines int `yaml:"max_lines" mapstructure:"max_lines"`
}

// GraphConfig controls terminal-width-derived graph geometry.
type GraphConfig struct {
	// Margin is subtracted from the terminal column count before clamping.
	Margin int `yaml:"margin" mapstructure:"margin"`

	// MinWidth is the narrowest the graphs are allowed to get.
	MinWidth int `yaml:"min_width" mapstructure:"min_width"`
}

// PowerConfig controls the power-supply sampler.
type PowerConfig struct {
	// Enabled toggles the /sys/class/power_supply scan. When off, the
	// status line shows the no-battery sentinel.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// DefaultConfig returns a Config with the dashboard's stock tuning.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Refresh: 500 * time.Millisecond,
		History: HistoryConfig{
			Height:   10,
			Divisor:  4,
			Capacity: 512,
		},
		Debug: DebugConfig{
			MaxLines: 12,
		},
		Graph: GraphConfig{
			Margin:   12,
			MinWidth: 20,
		},
		Power: PowerConfig{
			Enabled: true,
		},
	}
}
