package edmxtidy

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess             = 0  // Document processed successfully
	ExitGeneralError        = 1  // Unknown or unclassified error
	ExitUsageError          = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic               = 3  // Internal panic (unexpected crash)
	ExitConfigError         = 10 // Invalid configuration or sort method
	ExitMalformedDocument   = 11 // Input is not a usable EDMX document
	ExitMissingModelSection = 12 // StorageModels or ConceptualModels missing
	ExitWriteFailed         = 13 // Result could not be persisted
	ExitWouldChange         = 14 // --check found a file that is not tidy
)

// Local element and attribute names used by the reconciliation engine.
// Lookups ignore namespace prefixes, so these match CSDL, SSDL and MSL
// dialects alike.
const (
	StorageModelsElement      = "StorageModels"
	ConceptualModelsElement   = "ConceptualModels"
	EntityTypeElement         = "EntityType"
	PropertyElement           = "Property"
	NavigationPropertyElement = "NavigationProperty"

	NameAttribute         = "Name"
	RelationshipAttribute = "Relationship"
	FromRoleAttribute     = "FromRole"
	ToRoleAttribute       = "ToRole"
)

// DefaultSortMethod is used when neither a flag nor edmxtidy.yaml selects one.
const DefaultSortMethod = SortStorageModel
