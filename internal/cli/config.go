package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/edmxtidy/internal/config"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// loadProjectConfig loads edmxtidy.yaml from the directory holding the input file.
// Returns nil config if edmxtidy.yaml does not exist (not an error).
func loadProjectConfig(inputPath string) (*config.ProjectConfig, error) {
	projectCfg, err := config.Load(filepath.Dir(inputPath))
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load %s: %v", edmxtidy.ErrInvalidConfig, config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveSortMethod returns the --sort value when given, otherwise the
// method named in edmxtidy.yaml, otherwise the default.
func resolveSortMethod(cmd *cobra.Command, flagValue string, projectCfg *config.ProjectConfig) (edmxtidy.SortMethod, error) {
	if cmd.Flags().Changed("sort") {
		method, err := edmxtidy.ParseSortMethod(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: --sort: %w", edmxtidy.ErrInvalidArgument, err)
		}
		return method, nil
	}

	if projectCfg != nil && projectCfg.Sort != "" {
		method, err := edmxtidy.ParseSortMethod(projectCfg.Sort)
		if err != nil {
			return 0, fmt.Errorf("invalid sort in %s: %w", config.ConfigFileName, err)
		}
		return method, nil
	}

	return edmxtidy.DefaultSortMethod, nil
}

// resolveOutputPath prefers --output over the output configured in edmxtidy.yaml.
func resolveOutputPath(cmd *cobra.Command, flagValue, inputPath string, projectCfg *config.ProjectConfig) string {
	if cmd.Flags().Changed("output") {
		return flagValue
	}
	return projectCfg.ResolveOutput(filepath.Dir(inputPath))
}

// resolveRenameNavigation prefers --rename-nav over edmxtidy.yaml.
func resolveRenameNavigation(cmd *cobra.Command, flagValue bool, projectCfg *config.ProjectConfig) bool {
	if cmd.Flags().Changed("rename-nav") || projectCfg == nil {
		return flagValue
	}
	return projectCfg.RenameNavigation
}

func sortMethodNames() string {
	methods := edmxtidy.SortMethods()
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
