package edmxtidy

import (
	"fmt"
	"strings"
)

// SortMethod selects how conceptual Property children are ordered.
// It is chosen once per run and applied to every entity.
type SortMethod int

const (
	// SortNone keeps the declared order.
	SortNone SortMethod = iota
	// SortAlphabetical orders by Name using ordinal comparison (stable).
	SortAlphabetical
	// SortStorageModel aligns to the matching storage entity's order.
	SortStorageModel
)

var sortMethodNames = map[SortMethod]string{
	SortNone:         "None",
	SortAlphabetical: "Alphabetical",
	SortStorageModel: "StorageModel",
}

// SortMethods returns all supported methods in declaration order.
func SortMethods() []SortMethod {
	return []SortMethod{SortNone, SortAlphabetical, SortStorageModel}
}

func (m SortMethod) String() string {
	if name, ok := sortMethodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("SortMethod(%d)", int(m))
}

// Valid reports whether m is one of the supported methods.
func (m SortMethod) Valid() bool {
	_, ok := sortMethodNames[m]
	return ok
}

// ParseSortMethod parses a sort method name case-insensitively.
// Returns an error wrapping ErrUnknownSortMethod for unsupported names.
func ParseSortMethod(s string) (SortMethod, error) {
	trimmed := strings.TrimSpace(s)
	for _, m := range SortMethods() {
		if strings.EqualFold(trimmed, m.String()) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (expected None, Alphabetical or StorageModel)", ErrUnknownSortMethod, s)
}
