package bhtree

// Walk calls visit once for every Region in the subtree rooted at r,
// parent before children, so a caller can emit diagnostic geometry (see
// simcore.World.TreeBoxVertices) without reaching into Region internals
// beyond what this package already exports.
func (r *Region) Walk(visit func(*Region)) {
	if r == nil {
		return
	}
	visit(r)
	for _, c := range r.Children {
		c.Walk(visit)
	}
}
