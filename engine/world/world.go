// Package world builds the flat location index from the nested geography
// tree and resolves location descriptors against it.
package world

import (
	"strings"

	"github.com/FelpHendeson/TerminalRPG/engine/state"
	"github.com/FelpHendeson/TerminalRPG/types"
)

// KeySeparator joins ancestor ids into a composite index key.
const KeySeparator = ">"

// Index is the flat lookup over the world geography. It is rebuilt wholesale
// by Build and never mutated afterwards.
type Index struct {
	byKey map[string]*types.LocationNode
	// byID is a convenience lookup by bare id. Last writer wins when ids
	// collide across branches, so it is not authoritative — byKey is.
	byID   map[string]*types.LocationNode
	crumbs map[string][]*types.LocationNode
	order  []*types.LocationNode // definition order, for stable listings
}

// Build walks the nested world tree and produces the index. Node types are
// assigned by depth: world, continent, empire, kingdom, domain, city,
// village, local. Children deeper than the hierarchy are ignored.
func Build(worlds []types.TreeNode) *Index {
	ix := &Index{
		byKey:  map[string]*types.LocationNode{},
		byID:   map[string]*types.LocationNode{},
		crumbs: map[string][]*types.LocationNode{},
	}
	for i := range worlds {
		ix.add(&worlds[i], 0, nil, nil)
	}
	return ix
}

func (ix *Index) add(raw *types.TreeNode, depth int, parentPath []string, parentCrumbs []*types.LocationNode) {
	if depth >= len(types.LocationTypes) {
		return
	}
	node := &types.LocationNode{
		ID:          raw.ID,
		Type:        types.LocationTypes[depth],
		Name:        raw.Name,
		Description: raw.Description,
		ParentPath:  append([]string(nil), parentPath...),
	}

	full := append(append([]string(nil), parentPath...), raw.ID)
	key := keyOf(full)
	ix.byKey[key] = node
	ix.byID[node.ID] = node
	ix.order = append(ix.order, node)

	crumbs := make([]*types.LocationNode, 0, len(parentCrumbs)+1)
	crumbs = append(crumbs, parentCrumbs...)
	crumbs = append(crumbs, node)
	ix.crumbs[key] = crumbs

	for i := range raw.Children {
		ix.add(&raw.Children[i], depth+1, full, crumbs)
	}
}

func keyOf(ids []string) string {
	return strings.Join(ids, KeySeparator)
}

// Key returns the composite index key of a node.
func Key(node *types.LocationNode) string {
	return keyOf(append(append([]string(nil), node.ParentPath...), node.ID))
}

// Resolve maps any supported descriptor to an indexed node:
//   - *types.LocationNode: passthrough (re-resolved by key)
//   - string containing the key separator: composite key lookup
//   - plain string: bare id lookup (non-authoritative on collisions)
//   - types.LocationPath: key built from the present fields only — a path
//     with a gap in its ancestor chain deliberately resolves to nothing
//
// Returns (nil, false) for unknown descriptors; never panics.
func (ix *Index) Resolve(ref any) (*types.LocationNode, bool) {
	switch v := ref.(type) {
	case nil:
		return nil, false
	case *types.LocationNode:
		if v == nil {
			return nil, false
		}
		if node, ok := ix.byKey[Key(v)]; ok {
			return node, true
		}
		return nil, false
	case types.LocationPath:
		node, ok := ix.byKey[keyOf(v.IDs())]
		return node, ok
	case *types.LocationPath:
		if v == nil {
			return nil, false
		}
		node, ok := ix.byKey[keyOf(v.IDs())]
		return node, ok
	case string:
		if strings.Contains(v, KeySeparator) {
			node, ok := ix.byKey[v]
			return node, ok
		}
		node, ok := ix.byID[v]
		return node, ok
	default:
		return nil, false
	}
}

// Breadcrumbs returns the ordered ancestor chain from the root world down to
// the node itself, inclusive. Nil for unindexed nodes.
func (ix *Index) Breadcrumbs(node *types.LocationNode) []*types.LocationNode {
	if node == nil {
		return nil
	}
	return ix.crumbs[Key(node)]
}

// PathOf converts a node's breadcrumbs into a full LocationPath.
func (ix *Index) PathOf(node *types.LocationNode) types.LocationPath {
	var p types.LocationPath
	for _, crumb := range ix.Breadcrumbs(node) {
		switch crumb.Type {
		case types.LocationWorld:
			p.WorldID = crumb.ID
		case types.LocationContinent:
			p.ContinentID = crumb.ID
		case types.LocationEmpire:
			p.EmpireID = crumb.ID
		case types.LocationKingdom:
			p.KingdomID = crumb.ID
		case types.LocationDomain:
			p.DomainID = crumb.ID
		case types.LocationCity:
			p.CityID = crumb.ID
		case types.LocationVillage:
			p.VillageID = crumb.ID
		case types.LocationLocal:
			p.LocalID = crumb.ID
		}
	}
	return p
}

// Children returns the direct children of the referenced node, one level
// down, in definition order. An optional type filter restricts the result.
func (ix *Index) Children(ref any, typeFilter ...types.LocationType) []*types.LocationNode {
	node, ok := ix.Resolve(ref)
	if !ok {
		return nil
	}
	parent := append(append([]string(nil), node.ParentPath...), node.ID)

	var out []*types.LocationNode
	for _, cand := range ix.order {
		if !samePath(cand.ParentPath, parent) {
			continue
		}
		if len(typeFilter) > 0 && !typeIn(cand.Type, typeFilter) {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// All returns every indexed node, optionally filtered by type, in
// definition order.
func (ix *Index) All(typeFilter ...types.LocationType) []*types.LocationNode {
	if len(typeFilter) == 0 {
		return append([]*types.LocationNode(nil), ix.order...)
	}
	var out []*types.LocationNode
	for _, node := range ix.order {
		if typeIn(node.Type, typeFilter) {
			out = append(out, node)
		}
	}
	return out
}

// SetCurrent resolves a descriptor and writes the full LocationPath (built
// from breadcrumbs) into the flags. Returns the resolved node, or false if
// the descriptor is unknown (flags untouched).
func (ix *Index) SetCurrent(flags *state.Flags, ref any) (*types.LocationNode, bool) {
	node, ok := ix.Resolve(ref)
	if !ok {
		return nil, false
	}
	p := ix.PathOf(node)
	flags.Location = &p
	return node, true
}

// Current resolves the player's current location from the flags.
// Returns (nil, false) when no location is set or it no longer resolves.
func (ix *Index) Current(flags *state.Flags) (*types.LocationNode, bool) {
	if flags.Location == nil {
		return nil, false
	}
	return ix.Resolve(*flags.Location)
}

// DefaultLocation walks the first branch of the tree to the deepest
// settlement reachable: first world → continent → ... → village. Used when
// a save carries no location. Returns false on an empty index.
func (ix *Index) DefaultLocation() (*types.LocationNode, bool) {
	worlds := ix.All(types.LocationWorld)
	if len(worlds) == 0 {
		return nil, false
	}
	node := worlds[0]
	for {
		children := ix.Children(node)
		if len(children) == 0 {
			return node, true
		}
		next := children[0]
		if next.Type == types.LocationLocal {
			// Stop at the village level; locals are points of interest,
			// not a travel destination by default.
			return node, true
		}
		node = next
	}
}

func samePath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func typeIn(t types.LocationType, set []types.LocationType) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}
