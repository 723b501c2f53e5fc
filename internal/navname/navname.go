// Package navname derives NavigationProperty names from foreign-key
// relationship identifiers of the form FK_<Parent>_<Child>.
package navname

import (
	"regexp"

	"github.com/vvka-141/edmxtidy/internal/edmx"
	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// fkPattern is unanchored at the start so namespace-qualified identifiers
// such as Model.FK_Order_LineItem match.
var fkPattern = regexp.MustCompile(`FK_([^_]*)_([^_]*)$`)

// DeriveName returns the canonical name for a navigation property that
// follows relationship when traversed from fromRole. ok is false when
// relationship does not follow the FK_<Parent>_<Child> convention.
//
// Navigating from the parent yields the child name; from anywhere else it
// yields the parent name. toRole is accepted for symmetry with the
// NavigationProperty attributes but does not affect the result.
func DeriveName(relationship, fromRole, toRole string) (string, bool) {
	m := fkPattern.FindStringSubmatch(relationship)
	if m == nil {
		return "", false
	}
	parent, child := m[1], m[2]
	if parent == fromRole {
		return child, true
	}
	return parent, true
}

// Apply renames the NavigationProperty children of entity in place and
// returns the renames performed. Name collisions are not detected.
func Apply(entity *edmx.Element) []edmxtidy.Rename {
	var renames []edmxtidy.Rename
	entityName := edmx.NameOf(entity)

	for _, nav := range edmx.ChildrenByLocalName(entity, edmxtidy.NavigationPropertyElement) {
		derived, ok := DeriveName(
			edmx.AttrOf(nav, edmxtidy.RelationshipAttribute),
			edmx.AttrOf(nav, edmxtidy.FromRoleAttribute),
			edmx.AttrOf(nav, edmxtidy.ToRoleAttribute),
		)
		if !ok {
			continue
		}
		current := edmx.NameOf(nav)
		if derived == current {
			continue
		}
		edmx.SetName(nav, derived)
		renames = append(renames, edmxtidy.Rename{Entity: entityName, From: current, To: derived})
	}
	return renames
}
