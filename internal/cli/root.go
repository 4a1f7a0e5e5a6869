package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Root flags for the dashboard run. Zero values mean "not given".
var (
	configFlag     string
	refreshFlag    string
	heightFlag     int
	debugLinesFlag int
	noPowerFlag    bool
)

// rootCmd is the bare `sidecar` invocation: the dashboard itself.
var rootCmd = &cobra.Command{
	Use:   "sidecar [path-to-watch]",
	Short: "Terminal-resident system dashboard",
	Long: `Run a live system dashboard that stays in the corner of a terminal.

Shows CPU and memory history graphs, current usage bars, load averages,
process counts, and battery state, sampled straight from the Linux
kernel. Pass a file path to follow its tail beneath the graphs, like a
build log you want to keep an eye on.

Examples:
  sidecar
  sidecar /var/log/syslog
  sidecar --refresh 1s build.log`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		watch := ""
		if len(args) == 1 {
			watch = args[0]
		}
		return dashCommand(watch)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")

	rootCmd.Flags().StringVar(&refreshFlag, "refresh", "", "refresh interval (e.g., 500ms, 1s)")
	rootCmd.Flags().IntVar(&heightFlag, "height", 0, "history graph height in rows")
	rootCmd.Flags().IntVar(&debugLinesFlag, "debug-lines", 0, "max lines held in the tail window")
	rootCmd.Flags().BoolVar(&noPowerFlag, "no-power", false, "skip battery and AC readings")
}

// Execute runs the root command. Errors are printed here and the process
// exits non-zero, so main stays a one-liner.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
