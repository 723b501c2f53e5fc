package cli

import (
	"fmt"
	"io"

	"github.com/vvka-141/edmxtidy/internal/checksum"
	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/internal/logging"
	"github.com/vvka-141/edmxtidy/internal/services"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

func newReconciler(fsProvider filesystem.FileSystemProvider, verbose bool) edmxtidy.Reconciler {
	return services.NewReconcileService(fsProvider, logging.NewConsoleLogger(verbose), checksum.New())
}

// reportResult prints the single confirmation line for a run. In check mode
// a pending change is returned as ErrWouldChange.
func reportResult(w io.Writer, result *edmxtidy.Result, check bool) error {
	if !check {
		fmt.Fprintf(w, "Writing result to %s\n", result.OutputPath)
		return nil
	}
	if !result.Changed {
		fmt.Fprintf(w, "%s is already tidy\n", result.OutputPath)
		return nil
	}
	fmt.Fprintf(w, "%s would change\n", result.OutputPath)
	return fmt.Errorf("%w: %s", edmxtidy.ErrWouldChange, result.OutputPath)
}
