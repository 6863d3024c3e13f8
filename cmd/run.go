package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	"dupesweep.dev/pkg/dupesweep/internal/domain"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

var runDeleteFromFlag []string
var runDryRunFlag bool
var runManualFlag bool
var runAuditDirFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [dirs...]",
		Short: "Find duplicates and remove authorized copies",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := parsePaths(args)
			if len(roots) == 0 {
				return errors.New("at least one directory must be specified")
			}

			deleteRoots := parsePaths(viper.GetStringSlice(deleteFromConfigKey))
			if len(deleteRoots) == 0 {
				return errors.New("at least one --delete-from directory must be specified")
			}

			fingerprinter, err := adapter.NewFingerprinter(viper.GetString(algorithmConfigKey))
			if err != nil {
				return err
			}

			manual := viper.GetBool(manualConfigKey)

			policy := m.PolicyAutomatic
			if manual {
				policy = m.PolicyManual
			}

			ui := selectUI(cmd, manual)
			prompt := adapter.NewConsolePrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			workflow := buildWorkflow(fsAdapter, fingerprinter, prompt, ui, auditLogFactory)

			_, err = workflow.Run(cmd.Context(), domain.RunArgs{
				ScanArgs: domain.ScanArgs{
					Roots:   roots,
					Workers: viper.GetInt(parallelConfigKey),
				},
				DeleteRoots: deleteRoots,
				Policy:      policy,
				DryRun:      viper.GetBool(dryRunConfigKey),
				AuditDir:    m.Path(viper.GetString(auditDirConfigKey)),
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&runDeleteFromFlag, deleteFromFlagName, "d", viper.GetStringSlice(deleteFromConfigKey), "directory authorized for deletion (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(deleteFromFlagName), deleteFromConfigKey)

	cmd.Flags().BoolVar(&runDryRunFlag, dryRunFlagName, viper.GetBool(dryRunConfigKey), "simulate deletions without removing files")
	bindFlagToConfig(cmd.Flags().Lookup(dryRunFlagName), dryRunConfigKey)

	cmd.Flags().BoolVarP(&runManualFlag, manualFlagName, "m", viper.GetBool(manualConfigKey), "select the copy to keep per group interactively")
	bindFlagToConfig(cmd.Flags().Lookup(manualFlagName), manualConfigKey)

	cmd.Flags().StringVar(&runAuditDirFlag, auditDirFlagName, viper.GetString(auditDirConfigKey), "directory for the per-run audit log")
	bindFlagToConfig(cmd.Flags().Lookup(auditDirFlagName), auditDirConfigKey)
}
