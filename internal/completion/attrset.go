package completion

import (
	"github.com/viewls/viewls/internal/sdk"
)

// ResolvedAttribute is one attribute an element supports, paired with the
// component whose styleable group declared it.
type ResolvedAttribute struct {
	Ref   sdk.AttributeRef
	Owner string
}

// ResolveAttributes returns the merged attribute set for the named
// component: the union of its own styleable group and those of its
// ancestors, nearest declaration first, deduplicated by attribute identity.
// Unknown components resolve to nil.
func ResolveAttributes(components sdk.ComponentIndex, styleables sdk.StyleableIndex, namespace, name string) []ResolvedAttribute {
	c, ok := components.Component(name)
	if !ok {
		return nil
	}
	groups := collectGroups(styleables, namespace, componentChain(components, c))
	return mergeEntries(groups)
}

// collectGroups gathers the styleable group of every chain member in order,
// deduplicated by owner. Members without a group are skipped; partial
// metadata is expected, not an error.
func collectGroups(idx sdk.StyleableIndex, namespace string, chain []*sdk.Component) []*sdk.AttributeGroup {
	var groups []*sdk.AttributeGroup
	seen := map[string]bool{}
	for _, c := range chain {
		g, ok := idx.Styleable(namespace, c.SimpleName)
		if !ok || seen[g.Owner] {
			continue
		}
		seen[g.Owner] = true
		groups = append(groups, g)
	}
	return groups
}

// mergeEntries unions group entries in resolution order. The first group to
// contribute a pkg:entry pair keeps it, so nearer components win conflicts.
func mergeEntries(groups []*sdk.AttributeGroup) []ResolvedAttribute {
	var entries []ResolvedAttribute
	seen := map[sdk.AttributeRef]bool{}
	for _, g := range groups {
		for _, ref := range g.Entries {
			if seen[ref] {
				continue
			}
			seen[ref] = true
			entries = append(entries, ResolvedAttribute{Ref: ref, Owner: g.Owner})
		}
	}
	return entries
}
