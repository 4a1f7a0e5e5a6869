// Package cli implements the sidecar command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small implementation function. The root command is the
// dashboard itself: `sidecar` with no subcommand starts the tick loop,
// and an optional positional argument names a file to tail beneath the
// graphs.
//
// # Command Structure
//
//	sidecar [path-to-watch]  - Run the dashboard
//	sidecar init             - Create .sidecar.yaml config
//	sidecar doctor           - Diagnose kernel and terminal issues
//	sidecar version          - Print version information
//	sidecar completion       - Generate shell completions
//
// # Flag Handling
//
// The --config flag is persistent and available to all subcommands.
// Dashboard tuning flags (--refresh, --height, --debug-lines, --no-power)
// live on the root command and override the config file for one run; a
// zero value means the flag was not given.
package cli
