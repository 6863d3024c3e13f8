// Package cmd provides the root command and CLI setup for dupesweep.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	"dupesweep.dev/pkg/dupesweep/internal/controller"
	"dupesweep.dev/pkg/dupesweep/internal/domain"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

var fsAdapter adapter.ScanFS
var auditLogFactory adapter.AuditLogFactory

// buildWorkflow is swapped out by command tests.
var buildWorkflow = domain.NewWorkflow

// algorithmFlag and parallelFlag are root-level flags shared by commands that
// fingerprint files.
var algorithmFlag string
var parallelFlag int

// verboseFlag raises the file log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalScanFS()
	auditLogFactory = adapter.NewFileAuditLog
}

const rootLongDescription = `Dupesweep finds files with identical content across one or more directory
trees and removes redundant copies under explicit control: deletions only
ever happen inside directories you authorize with --delete-from, at least
one copy of every content always survives, and every decision is written to
a per-run audit log.

Runs are dry by default; pass --dry-run=false to delete for real.`

const runLongDescription = `Scan the given directories, group files by content fingerprint and resolve
every duplicate group.

Only files inside a directory named with --delete-from are candidates for
removal. In automatic mode the first-discovered copy is kept whenever every
copy sits inside the authorized directories; if a copy survives elsewhere,
all authorized copies are removed. With --manual you pick the copy to keep
per group, or answer 0 to leave the group alone.`

const listLongDescription = `Scan the given directories and list the duplicate groups without deleting
anything.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd builds a fresh root command with the shared flags configured;
// used by tests to avoid mutating the package-level command.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dupesweep",
		Short: "Find and remove duplicate files",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&algorithmFlag, algorithmFlagName, "a",
			viper.GetString(algorithmConfigKey),
			"content fingerprint algorithm (sha256 or md5)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(algorithmFlagName), algorithmConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel fingerprinting workers")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// selectUI picks the TUI only when stdout is a terminal and the run does not
// need to interleave prompts with output.
func selectUI(cmd *cobra.Command, interactive bool) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(os.Stdout) && !interactive)
}
