package layout

import "gocko/style"

// Run builds, collapses, and computes the full layout tree for a styled
// tree in one call — the entry point the engine orchestrator uses. A
// display:none root yields a nil tree: a successful, empty layout rather
// than an error (spec §4.6 "Failure modes").
func Run(styled *style.Node, opts Options) *Box {
	tree := Build(styled)
	tree = CollapseWhitespace(tree)
	Compute(tree, opts)
	return tree
}
