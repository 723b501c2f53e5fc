package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

var sortCmd = &cobra.Command{
	Use:   "sort --input <file.edmx>",
	Short: "Reorder conceptual properties of an EDMX model",
	Long: `Sort reorders the Property elements of every conceptual EntityType and moves
NavigationProperty elements after them. Whitespace and comments stay where
they are.

Sort methods:
  StorageModel  Follow the column order of the matching storage entity (default).
                Entities missing from the storage model keep their property order.
  Alphabetical  Order by name, ordinal comparison.
  None          Keep the declared order; only navigation properties move.

Settings may also come from edmxtidy.yaml next to the input file:
  sort: Alphabetical
  renameNavigation: true
  output: tidy/Model.edmx
Flags take precedence over the file.

Examples:
  # Align conceptual properties with the database column order
  edmxtidy sort -i Model.edmx

  # Alphabetical order, also renaming navigation properties
  edmxtidy sort -i Model.edmx -s alphabetical --rename-nav

  # Fail in CI when the model is not tidy
  edmxtidy sort -i Model.edmx --check`,
	Args: cobra.NoArgs,
	RunE: runSort,
}

type sortFlagValues struct {
	input, output, sort string
	renameNav, check    bool
}

var sortFlags sortFlagValues

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().StringVarP(&sortFlags.input, "input", "i", "",
		"EDMX file to tidy (required)")
	sortCmd.Flags().StringVarP(&sortFlags.sort, "sort", "s", edmxtidy.DefaultSortMethod.String(),
		"Sort method: "+sortMethodNames()+" (case-insensitive)")
	sortCmd.Flags().StringVarP(&sortFlags.output, "output", "o", "",
		"Write the result here instead of overwriting the input")
	sortCmd.Flags().BoolVar(&sortFlags.renameNav, "rename-nav", false,
		"Also rename navigation properties after their foreign keys")
	sortCmd.Flags().BoolVar(&sortFlags.check, "check", false,
		"Report whether the file would change without writing it (exit 14 if so)")
}

// buildSortOptions builds Options from flags and edmxtidy.yaml.
func buildSortOptions(cmd *cobra.Command, fsProvider filesystem.FileSystemProvider) (edmxtidy.Options, error) {
	if err := RequireInputFile(fsProvider, sortFlags.input); err != nil {
		return edmxtidy.Options{}, err
	}

	projectCfg, err := loadProjectConfig(sortFlags.input)
	if err != nil {
		return edmxtidy.Options{}, err
	}

	method, err := resolveSortMethod(cmd, sortFlags.sort, projectCfg)
	if err != nil {
		return edmxtidy.Options{}, err
	}

	return edmxtidy.Options{
		InputPath:        sortFlags.input,
		OutputPath:       resolveOutputPath(cmd, sortFlags.output, sortFlags.input, projectCfg),
		SortMethod:       method,
		RenameNavigation: resolveRenameNavigation(cmd, sortFlags.renameNav, projectCfg),
		Check:            sortFlags.check,
	}, nil
}

func runSort(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	fsProvider := filesystem.NewOSFileSystem()

	opts, err := buildSortOptions(cmd, fsProvider)
	if err != nil {
		if errors.Is(err, edmxtidy.ErrInvalidArgument) {
			_ = cmd.Usage()
		}
		return err
	}

	reconciler := newReconciler(fsProvider, verbose)
	result, err := reconciler.Run(opts)
	if err != nil {
		return err
	}
	if verbose {
		renderSummary(cmd.ErrOrStderr(), result)
	}
	return reportResult(cmd.OutOrStdout(), result, opts.Check)
}
