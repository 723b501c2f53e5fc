package edmxtidy

import "fmt"

// Options configures a single reconciliation run.
type Options struct {
	// InputPath is the EDMX file to read. Required.
	InputPath string

	// OutputPath is where the result is written. Empty means InputPath.
	OutputPath string

	// SortMethod selects the Property ordering policy.
	SortMethod SortMethod

	// RenameNavigation also derives NavigationProperty names from
	// foreign-key relationship identifiers.
	RenameNavigation bool

	// Check computes the result without writing it.
	Check bool
}

// Target returns the path the result is written to.
func (o Options) Target() string {
	if o.OutputPath != "" {
		return o.OutputPath
	}
	return o.InputPath
}

// WarningKind classifies recoverable per-entity data problems.
type WarningKind string

const (
	// WarningOrphanEntity marks a conceptual entity without a storage counterpart.
	WarningOrphanEntity WarningKind = "orphan-entity"
	// WarningAmbiguousProperty marks several conceptual properties sharing one storage name.
	WarningAmbiguousProperty WarningKind = "ambiguous-property"
	// WarningDuplicateStorageEntity marks a storage entity name declared more than once.
	WarningDuplicateStorageEntity WarningKind = "duplicate-storage-entity"
)

// Warning is a recovered data inconsistency. The run continues past it.
type Warning struct {
	Kind     WarningKind
	Entity   string
	Property string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningOrphanEntity:
		return fmt.Sprintf("%s exists in conceptual model but not in storage model, skipped", w.Entity)
	case WarningAmbiguousProperty:
		return fmt.Sprintf("%s has more than one property named %s, using the first", w.Entity, w.Property)
	case WarningDuplicateStorageEntity:
		return fmt.Sprintf("storage model declares %s more than once, using the first", w.Entity)
	default:
		return fmt.Sprintf("%s: %s", w.Kind, w.Entity)
	}
}

// Rename records one NavigationProperty whose Name was rewritten.
type Rename struct {
	Entity string
	From   string
	To     string
}

// Result summarizes a reconciliation run.
type Result struct {
	// OutputPath is the path written, or that would be written in check mode.
	OutputPath string

	// EntitiesProcessed counts conceptual entities that were reordered.
	EntitiesProcessed int

	// Renames lists navigation properties renamed during the run.
	Renames []Rename

	Warnings []Warning

	// InputChecksum and OutputChecksum are SHA-256 digests of the document
	// serialized before and after the transform.
	InputChecksum  string
	OutputChecksum string

	// Changed reports whether the transform altered the document.
	Changed bool

	// Written reports whether the result was persisted.
	Written bool
}

// Reconciler is the main interface for tidying EDMX documents.
type Reconciler interface {
	// Run reorders conceptual properties (and optionally renames navigation
	// properties) and persists the result unless Options.Check is set.
	Run(opts Options) (*Result, error)

	// RenameNavigation only renames navigation properties.
	RenameNavigation(opts Options) (*Result, error)
}
