package services

import (
	"fmt"

	"github.com/vvka-141/edmxtidy/internal/checksum"
	"github.com/vvka-141/edmxtidy/internal/edmx"
	"github.com/vvka-141/edmxtidy/internal/files/filesystem"
	"github.com/vvka-141/edmxtidy/internal/navname"
	"github.com/vvka-141/edmxtidy/internal/sorter"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// ReconcileService implements the Reconciler interface.
// Thread-Safety: NOT safe for concurrent calls on the same instance.
type ReconcileService struct {
	fs       filesystem.FileSystemProvider
	logger   edmxtidy.Logger
	checksum checksum.Calculator
}

// NewReconcileService creates a new ReconcileService with all dependencies injected.
// Nil dependencies are programmer errors and panic.
func NewReconcileService(
	fs filesystem.FileSystemProvider,
	logger edmxtidy.Logger,
	calc checksum.Calculator,
) *ReconcileService {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if calc == nil {
		panic("checksum calculator cannot be nil")
	}
	return &ReconcileService{fs: fs, logger: logger, checksum: calc}
}

// Run reorders the Property children of every conceptual EntityType and
// moves NavigationProperty children after them. Nothing is written unless
// every step before persisting succeeds.
func (s *ReconcileService) Run(opts edmxtidy.Options) (*edmxtidy.Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if !opts.SortMethod.Valid() || !sorter.Supports(opts.SortMethod) {
		return nil, fmt.Errorf("%w: %s", edmxtidy.ErrUnknownSortMethod, opts.SortMethod)
	}

	doc, err := edmx.Load(s.fs, opts.InputPath)
	if err != nil {
		return nil, err
	}
	storage, err := doc.Section(edmxtidy.StorageModelsElement)
	if err != nil {
		return nil, err
	}
	conceptual, err := doc.Section(edmxtidy.ConceptualModelsElement)
	if err != nil {
		return nil, err
	}

	result, err := s.newResult(doc, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Verbose("Sorting %s with method %s", doc.Path(), opts.SortMethod)
	index := s.indexStorageEntities(storage, result)

	for _, entity := range edmx.FindByLocalName(conceptual, edmxtidy.EntityTypeElement) {
		if opts.RenameNavigation {
			s.renameEntity(entity, result)
		}
		if err := s.reorderEntity(entity, opts.SortMethod, index, result); err != nil {
			return nil, err
		}
	}

	return s.finish(doc, opts, result)
}

// RenameNavigation only derives NavigationProperty names. The storage
// model is not consulted and need not be present.
func (s *ReconcileService) RenameNavigation(opts edmxtidy.Options) (*edmxtidy.Result, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	doc, err := edmx.Load(s.fs, opts.InputPath)
	if err != nil {
		return nil, err
	}
	conceptual, err := doc.Section(edmxtidy.ConceptualModelsElement)
	if err != nil {
		return nil, err
	}

	result, err := s.newResult(doc, opts)
	if err != nil {
		return nil, err
	}

	s.logger.Verbose("Renaming navigation properties in %s", doc.Path())
	for _, entity := range edmx.FindByLocalName(conceptual, edmxtidy.EntityTypeElement) {
		s.renameEntity(entity, result)
	}

	return s.finish(doc, opts, result)
}

func validateOptions(opts edmxtidy.Options) error {
	if opts.InputPath == "" {
		return fmt.Errorf("%w: input path is required", edmxtidy.ErrInvalidArgument)
	}
	return nil
}

// newResult records the checksum of the untouched document as serialized
// by the XML library, so that formatting normalization alone never counts
// as a change.
func (s *ReconcileService) newResult(doc *edmx.Document, opts edmxtidy.Options) (*edmxtidy.Result, error) {
	before, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", opts.InputPath, err)
	}
	return &edmxtidy.Result{
		OutputPath:    opts.Target(),
		InputChecksum: s.checksum.Calculate(before),
	}, nil
}

// indexStorageEntities maps storage EntityType names to their elements.
// The first declaration of a name wins.
func (s *ReconcileService) indexStorageEntities(storage *edmx.Element, result *edmxtidy.Result) map[string]*edmx.Element {
	entities := edmx.FindByLocalName(storage, edmxtidy.EntityTypeElement)
	index := make(map[string]*edmx.Element, len(entities))
	for _, e := range entities {
		name := edmx.NameOf(e)
		if _, seen := index[name]; seen {
			s.warn(result, edmxtidy.Warning{Kind: edmxtidy.WarningDuplicateStorageEntity, Entity: name})
			continue
		}
		index[name] = e
	}
	s.logger.Verbose("Indexed %d storage entities", len(index))
	return index
}

func (s *ReconcileService) renameEntity(entity *edmx.Element, result *edmxtidy.Result) {
	for _, r := range navname.Apply(entity) {
		s.logger.Verbose("Renamed navigation property %s.%s to %s", r.Entity, r.From, r.To)
		result.Renames = append(result.Renames, r)
	}
}

func (s *ReconcileService) reorderEntity(
	entity *edmx.Element,
	method edmxtidy.SortMethod,
	index map[string]*edmx.Element,
	result *edmxtidy.Result,
) error {
	name := edmx.NameOf(entity)

	// Orphans keep their declared Property order; navigation properties
	// still move after them.
	orphan := false
	var storageNames []string
	if method == edmxtidy.SortStorageModel {
		storageEntity, ok := index[name]
		if ok {
			for _, p := range edmx.ChildrenByLocalName(storageEntity, edmxtidy.PropertyElement) {
				storageNames = append(storageNames, edmx.NameOf(p))
			}
		} else {
			s.warn(result, edmxtidy.Warning{Kind: edmxtidy.WarningOrphanEntity, Entity: name})
			orphan = true
			method = edmxtidy.SortNone
		}
	}

	props := edmx.ChildrenByLocalName(entity, edmxtidy.PropertyElement)
	navs := edmx.ChildrenByLocalName(entity, edmxtidy.NavigationPropertyElement)

	outcome, err := sorter.Sort(method, props, storageNames, edmx.NameOf)
	if err != nil {
		return err
	}
	for _, prop := range outcome.Ambiguous {
		s.warn(result, edmxtidy.Warning{Kind: edmxtidy.WarningAmbiguousProperty, Entity: name, Property: prop})
	}

	ordered := make([]*edmx.Element, 0, len(props)+len(navs))
	ordered = append(ordered, outcome.Ordered...)
	ordered = append(ordered, navs...)
	if err := edmx.Rearrange(entity, ordered); err != nil {
		return fmt.Errorf("failed to reorder %s: %w", name, err)
	}

	if !orphan {
		result.EntitiesProcessed++
	}
	return nil
}

func (s *ReconcileService) warn(result *edmxtidy.Result, w edmxtidy.Warning) {
	result.Warnings = append(result.Warnings, w)
	s.logger.Warn("%s", w)
}

// finish serializes the document and, outside check mode, persists it as
// the very last step.
func (s *ReconcileService) finish(doc *edmx.Document, opts edmxtidy.Options, result *edmxtidy.Result) (*edmxtidy.Result, error) {
	data, err := doc.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize %s: %v", edmxtidy.ErrWriteFailed, doc.Path(), err)
	}
	result.OutputChecksum = s.checksum.Calculate(data)
	result.Changed = result.OutputChecksum != result.InputChecksum

	s.logger.Verbose("Checksum before: %s", result.InputChecksum)
	s.logger.Verbose("Checksum after:  %s", result.OutputChecksum)

	s.logger.Info("%s: %d entities reordered, %d navigation properties renamed, %d warnings",
		doc.Path(), result.EntitiesProcessed, len(result.Renames), len(result.Warnings))

	if opts.Check {
		return result, nil
	}

	if err := edmx.WriteBytes(s.fs, result.OutputPath, data); err != nil {
		s.logger.Error("Could not write %s, %s was left unchanged", result.OutputPath, doc.Path())
		return nil, err
	}
	result.Written = true
	return result, nil
}
