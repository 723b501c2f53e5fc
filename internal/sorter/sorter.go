// Package sorter orders conceptual-model properties.
//
// Each sort method is a pure ordering function over property names that
// returns a permutation; Sort applies that permutation to the caller's
// values. The policies never add or drop entries.
package sorter

import (
	"fmt"
	"slices"
	"sort"

	"github.com/vvka-141/edmxtidy/pkg/edmxtidy"
)

// orderFunc returns a permutation of indexes into names and the names that
// matched more than one entry.
type orderFunc func(names, storageNames []string) (perm []int, ambiguous []string)

var policies = map[edmxtidy.SortMethod]orderFunc{
	edmxtidy.SortNone:         identityOrder,
	edmxtidy.SortAlphabetical: alphabeticalOrder,
	edmxtidy.SortStorageModel: storageOrder,
}

// Outcome is the result of sorting one entity's properties.
type Outcome[T any] struct {
	Ordered []T

	// Ambiguous lists storage names matched by several conceptual
	// properties; the first one in declaration order was used.
	Ambiguous []string
}

// Sort orders conceptual by method. storageNames is the storage entity's
// property order and is only consulted by SortStorageModel.
func Sort[T any](method edmxtidy.SortMethod, conceptual []T, storageNames []string, nameOf func(T) string) (Outcome[T], error) {
	order, ok := policies[method]
	if !ok {
		return Outcome[T]{}, fmt.Errorf("%w: %s", edmxtidy.ErrUnknownSortMethod, method)
	}

	names := make([]string, len(conceptual))
	for i, c := range conceptual {
		names[i] = nameOf(c)
	}

	perm, ambiguous := order(names, storageNames)
	ordered := make([]T, len(perm))
	for i, idx := range perm {
		ordered[i] = conceptual[idx]
	}
	return Outcome[T]{Ordered: ordered, Ambiguous: ambiguous}, nil
}

// Supports reports whether method has an ordering policy.
func Supports(method edmxtidy.SortMethod) bool {
	_, ok := policies[method]
	return ok
}

func identityOrder(names, _ []string) ([]int, []string) {
	return indexes(len(names)), nil
}

// alphabeticalOrder sorts by byte-wise comparison of names, keeping the
// declared order of equal names.
func alphabeticalOrder(names, _ []string) ([]int, []string) {
	perm := indexes(len(names))
	sort.SliceStable(perm, func(i, j int) bool {
		return names[perm[i]] < names[perm[j]]
	})
	return perm, nil
}

// storageOrder follows storageNames, taking for each name the first
// unclaimed conceptual property with that name. Properties unknown to the
// storage model follow in their declared order; storage-only names are
// skipped.
func storageOrder(names, storageNames []string) ([]int, []string) {
	pool := make(map[string][]int, len(names))
	for i, n := range names {
		pool[n] = append(pool[n], i)
	}

	perm := make([]int, 0, len(names))
	taken := make([]bool, len(names))
	var ambiguous []string
	for _, sn := range storageNames {
		candidates := pool[sn]
		if len(candidates) == 0 {
			continue
		}
		if len(candidates) > 1 && !slices.Contains(ambiguous, sn) {
			ambiguous = append(ambiguous, sn)
		}
		idx := candidates[0]
		pool[sn] = candidates[1:]
		perm = append(perm, idx)
		taken[idx] = true
	}

	for i := range names {
		if !taken[i] {
			perm = append(perm, i)
		}
	}
	return perm, ambiguous
}

func indexes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
