package application

import (
	"slices"
	"strings"

	"figlens/internal/domain"
)

// Re-export domain types for use by adapters
type (
	Node           = domain.Node
	Document       = domain.Document
	PaletteEntry   = domain.PaletteEntry
	ViewStats      = domain.ViewStats
	ComponentUsage = domain.ComponentUsage
	Kind           = domain.Kind
)

// sortByName orders entries by display name, falling back to ID so that
// reports stay byte-stable across runs regardless of map iteration order.
func sortByName[T any](items []T, key func(T) (name, id string)) {
	slices.SortFunc(items, func(a, b T) int {
		an, ai := key(a)
		bn, bi := key(b)
		if c := strings.Compare(an, bn); c != 0 {
			return c
		}
		return strings.Compare(ai, bi)
	})
}
