package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"dupesweep.dev/pkg/dupesweep/internal/adapter"
	"dupesweep.dev/pkg/dupesweep/internal/controller"
	"dupesweep.dev/pkg/dupesweep/internal/domain"
	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

var listFormatFlag string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [dirs...]",
		Short: "List duplicate groups without deleting",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots := parsePaths(args)
			if len(roots) == 0 {
				return errors.New("at least one directory must be specified")
			}

			if listFormatFlag != formatTable && listFormatFlag != formatYAML {
				return fmt.Errorf("unsupported format %q (supported: %s, %s)", listFormatFlag, formatTable, formatYAML)
			}

			fingerprinter, err := adapter.NewFingerprinter(viper.GetString(algorithmConfigKey))
			if err != nil {
				return err
			}

			// In yaml mode stdout carries the document alone; progress and
			// warnings go to stderr so piped output stays parseable.
			var ui controller.UI
			if listFormatFlag == formatYAML {
				ui = controller.NewSimpleUITo(cmd.ErrOrStderr())
			} else {
				ui = selectUI(cmd, false)
			}

			prompt := adapter.NewConsolePrompter(cmd.InOrStdin(), cmd.OutOrStdout())

			workflow := buildWorkflow(fsAdapter, fingerprinter, prompt, ui, auditLogFactory)

			groups, _, err := workflow.Scan(cmd.Context(), domain.ScanArgs{
				Roots:   roots,
				Workers: viper.GetInt(parallelConfigKey),
			})
			if err != nil {
				return err
			}

			if listFormatFlag == formatYAML {
				return writeGroupsYAML(cmd, groups)
			}

			ui.DisplayGroups(groups)

			return nil
		},
	}

	cmd.Flags().StringVarP(&listFormatFlag, "format", "f", formatTable, "output format (table or yaml)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type yamlGroup struct {
	Hash  string   `yaml:"hash"`
	Files []string `yaml:"files"`
}

func writeGroupsYAML(cmd *cobra.Command, groups []m.DuplicateGroup) error {
	out := make([]yamlGroup, 0, len(groups))

	for _, group := range groups {
		files := make([]string, 0, len(group.Members))
		for _, member := range group.Members {
			files = append(files, string(member))
		}

		out = append(out, yamlGroup{Hash: string(group.Fingerprint), Files: files})
	}

	encoded, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode groups: %w", err)
	}

	cmd.Print(string(encoded))

	return nil
}
