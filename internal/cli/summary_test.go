package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

func TestRenderSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, &edmxtidy.Result{EntitiesProcessed: 4})
	assert.Empty(t, buf.String())
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, &edmxtidy.Result{
		EntitiesProcessed: 2,
		Renames:           []edmxtidy.Rename{{Entity: "Order", From: "Customer1", To: "Customer"}},
		Warnings:          []edmxtidy.Warning{{Kind: edmxtidy.WarningOrphanEntity, Entity: "OrderSummary"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Customer1 → Customer")
	assert.Contains(t, out, "orphan-entity")
	assert.Contains(t, out, "OrderSummary exists in conceptual model but not in storage model, skipped")
	assert.Contains(t, out, "(2 entities reordered, 1 renamed, 1 warnings)")
}

func TestSortCmd_VerboseSummaryGoesToStderr(t *testing.T) {
	path := writeModel(t, t.TempDir(), orderModel)

	out, err := executeCommand(t, "sort", "-i", path, "--rename-nav", "--verbose")
	assert.NoError(t, err)
	assert.Contains(t, out, "Customer1 → Customer")
	assert.Contains(t, out, "Writing result to "+path)
}
