package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

var renameNavCmd = &cobra.Command{
	Use:   "rename-nav --input <file.edmx>",
	Short: "Rename navigation properties after their foreign keys",
	Long: `Rename-nav renames every conceptual NavigationProperty whose relationship
follows the FK_<Parent>_<Child> naming convention. Navigating from the parent
gives the child name, navigating from the child gives the parent name.
Relationships that do not follow the convention are left alone.

Only the ConceptualModels section is required. Element order is not changed.

Examples:
  edmxtidy rename-nav -i Model.edmx
  edmxtidy rename-nav -i Model.edmx -o Renamed.edmx`,
	Args: cobra.NoArgs,
	RunE: runRenameNav,
}

type renameNavFlagValues struct {
	input, output string
	check         bool
}

var renameNavFlags renameNavFlagValues

func init() {
	rootCmd.AddCommand(renameNavCmd)

	renameNavCmd.Flags().StringVarP(&renameNavFlags.input, "input", "i", "",
		"EDMX file to update (required)")
	renameNavCmd.Flags().StringVarP(&renameNavFlags.output, "output", "o", "",
		"Write the result here instead of overwriting the input")
	renameNavCmd.Flags().BoolVar(&renameNavFlags.check, "check", false,
		"Report whether the file would change without writing it (exit 14 if so)")
}

func runRenameNav(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	fsProvider := filesystem.NewOSFileSystem()

	if err := RequireInputFile(fsProvider, renameNavFlags.input); err != nil {
		return err
	}
	projectCfg, err := loadProjectConfig(renameNavFlags.input)
	if err != nil {
		return err
	}

	opts := edmxtidy.Options{
		InputPath:  renameNavFlags.input,
		OutputPath: resolveOutputPath(cmd, renameNavFlags.output, renameNavFlags.input, projectCfg),
		Check:      renameNavFlags.check,
	}

	result, err := newReconciler(fsProvider, verbose).RenameNavigation(opts)
	if err != nil {
		return err
	}
	if verbose {
		renderSummary(cmd.ErrOrStderr(), result)
	}
	return reportResult(cmd.OutOrStdout(), result, opts.Check)
}
