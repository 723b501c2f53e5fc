package edmx

import (
	"fmt"

	"github.com/beevik/etree"
)

// Rearrange puts ordered into the child positions its elements currently
// occupy under parent, in the given sequence. Every other child token
// (unrelated elements, whitespace, comments) keeps its position, so
// indentation survives the move.
//
// ordered must hold distinct direct children of parent.
func Rearrange(parent *Element, ordered []*Element) error {
	members := make(map[*Element]struct{}, len(ordered))
	for _, e := range ordered {
		if e.Parent() != parent {
			return fmt.Errorf("element %s is not a child of %s", e.FullTag(), parent.FullTag())
		}
		if _, dup := members[e]; dup {
			return fmt.Errorf("element %s listed twice", e.FullTag())
		}
		members[e] = struct{}{}
	}

	slots := make([]int, 0, len(ordered))
	for i, tok := range parent.Child {
		if e, ok := tok.(*etree.Element); ok {
			if _, member := members[e]; member {
				slots = append(slots, i)
			}
		}
	}

	// Detach from the back so earlier slot indexes stay valid, then refill
	// front to back so each insert lands on its original index.
	for i := len(slots) - 1; i >= 0; i-- {
		parent.RemoveChildAt(slots[i])
	}
	for i, pos := range slots {
		parent.InsertChildAt(pos, ordered[i])
	}
	return nil
}
