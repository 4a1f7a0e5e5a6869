package cli

import (
	"os"

	"github.com/rileyhilliard/sidecar/internal/errors"
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	initForce  bool
	doctorJSON bool
)

// initCmd creates a new .sidecar.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sidecar.yaml configuration",
	Long: `Initialize a new sidecar configuration file.

Creates a .sidecar.yaml file in the current directory with the stock
tuning, after a short interactive walkthrough of the common knobs.

Examples:
  sidecar init
  sidecar init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// doctorCmd diagnoses kernel source and terminal issues
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose kernel source and terminal issues",
	Long: `Run diagnostic checks to catch problems before the dashboard does.

Checks:
  - /proc/stat, /proc/meminfo, and /proc/loadavg readability
  - Memory arithmetic against an independent reading
  - Power supply visibility
  - Terminal size and capabilities
  - Configuration validity

Examples:
  sidecar doctor
  sidecar doctor --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return doctorCommand()
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for sidecar.

Examples:
  # Bash
  sidecar completion bash > /etc/bash_completion.d/sidecar

  # Zsh
  sidecar completion zsh > "${fpath[1]}/_sidecar"

  # Fish
  sidecar completion fish > ~/.config/fish/completions/sidecar.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// doctor command flags
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")

	// Register all commands
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(completionCmd)
}
