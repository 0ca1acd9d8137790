package domain

import (
	"slices"
	"strings"
)

// UnknownComponentName marks an instance whose componentId is not present
// in the file's component dictionary.
const UnknownComponentName = "(unknown component)"

// ComponentUsage is one component and how many instances of it occur.
type ComponentUsage struct {
	ComponentID string `json:"componentId"`
	Name        string `json:"name"`
	Key         string `json:"key,omitempty"`
	Count       int    `json:"count"`
}

// CountComponentUsage walks a (sub)tree counting INSTANCE nodes by their
// componentId, resolved against the dictionary. Results sort by descending
// count, ties by ascending name.
func CountComponentUsage(root *Node, components map[string]Component) ([]ComponentUsage, error) {
	counts := make(map[string]int)
	err := Walk(root, func(n, _ *Node) {
		if n.Type == NodeInstance && n.ComponentID != "" {
			counts[n.ComponentID]++
		}
	})
	if err != nil {
		return nil, err
	}

	usage := make([]ComponentUsage, 0, len(counts))
	for id, count := range counts {
		u := ComponentUsage{ComponentID: id, Name: UnknownComponentName, Count: count}
		if comp, ok := components[id]; ok {
			u.Name = comp.Name
			u.Key = comp.Key
		}
		usage = append(usage, u)
	}
	slices.SortFunc(usage, func(a, b ComponentUsage) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Name, b.Name)
	})
	return usage, nil
}
