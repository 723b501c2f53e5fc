package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edmxtidy",
	Short: "Keep Entity Framework EDMX models in a stable order",
	Long: `edmxtidy rewrites an EDMX model in place so that regenerating it from the
database produces small, reviewable diffs.

It reorders the Property elements of every conceptual entity (by default to
match the column order of the storage model), moves navigation properties
after them, and can rename navigation properties after the foreign keys they
follow.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or sort method
  11 - Input is not a well-formed EDMX document
  12 - StorageModels or ConceptualModels section missing
  13 - Result could not be written
  14 - --check found a file that would change`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
