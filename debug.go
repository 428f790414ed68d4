package arbor

import "log/slog"

// SetLogger sets the logger used for debug records and warnings.
// Nil restores slog.Default.
func (g *Graph) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	g.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, liveness
// transitions are logged at debug level and deep or wide graphs produce
// warnings as they are built.
func (g *Graph) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// debugMaxDepth is the ancestor depth above which attaching warns.
const debugMaxDepth = 32

// debugCheckTreeDepth warns if the longest ancestor chain of id exceeds
// the threshold.
func (g *Graph) debugCheckTreeDepth(id NodeID) {
	if d := g.depth(id, make(map[NodeID]int)); d > debugMaxDepth {
		g.logger.Warn("arbor: graph depth exceeds threshold",
			"node", id, "name", g.node(id).name, "depth", d, "threshold", debugMaxDepth)
	}
}

// depth returns the length of the longest path from id to a root.
// seen memoizes ancestors already measured; shared subgraphs would
// otherwise be walked once per path.
func (g *Graph) depth(id NodeID, seen map[NodeID]int) int {
	if d, ok := seen[id]; ok {
		return d
	}
	d := 0
	for _, p := range g.node(id).parents {
		d = max(d, g.depth(p, seen))
	}
	seen[id] = d + 1
	return d + 1
}

// debugMaxChildCount is the child count above which attaching warns.
const debugMaxChildCount = 1000

func (g *Graph) debugCheckChildCount(id NodeID) {
	n := g.node(id)
	if len(n.children) > debugMaxChildCount {
		g.logger.Warn("arbor: node child count exceeds threshold",
			"node", id, "name", n.name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
