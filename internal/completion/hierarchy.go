package completion

import (
	"github.com/viewls/viewls/internal/sdk"
)

// maxChainDepth caps ancestor resolution so cyclic or absurd registry data
// cannot stall a keystroke.
const maxChainDepth = 32

// componentChain returns c followed by its resolvable ancestors,
// nearest-first. Ancestor lists may be flattened chains or direct parents
// only; both walk the same because resolved ancestors enqueue their own
// ancestors. Unresolvable names are skipped, and a seen set keeps malformed
// registries from looping.
func componentChain(idx sdk.ComponentIndex, c *sdk.Component) []*sdk.Component {
	chain := []*sdk.Component{c}
	seen := map[string]bool{c.QualifiedName: true}
	queue := append([]string(nil), c.Ancestors...)

	for len(queue) > 0 && len(chain) < maxChainDepth {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true

		ancestor, ok := idx.Component(name)
		if !ok {
			continue
		}
		if ancestor.QualifiedName != name {
			if seen[ancestor.QualifiedName] {
				continue
			}
			seen[ancestor.QualifiedName] = true
		}
		chain = append(chain, ancestor)
		queue = append(queue, ancestor.Ancestors...)
	}
	return chain
}
