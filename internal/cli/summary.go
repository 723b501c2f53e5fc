package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vvka-141/edmxtidy/internal/tui"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// renderSummary prints renames and warnings of a run as a table.
// Nothing is printed when the run had neither.
func renderSummary(w io.Writer, result *edmxtidy.Result) {
	if len(result.Renames) == 0 && len(result.Warnings) == 0 {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Entity", "Change", "Detail"})

	for _, r := range result.Renames {
		t.AppendRow(table.Row{r.Entity, "renamed", fmt.Sprintf("%s %s %s", r.From, tui.SymbolArrowRight, r.To)})
	}
	for _, warning := range result.Warnings {
		t.AppendRow(table.Row{warning.Entity, string(warning.Kind), warning.String()})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d entities reordered, %d renamed, %d warnings)\n",
		result.EntitiesProcessed, len(result.Renames), len(result.Warnings))
}
