package arbor

import (
	"fmt"
	"log/slog"

	"github.com/phanxgames/arbor/linear"
)

// NodeType distinguishes the behavior of a node. A single flat record
// is used for every type, tagged by NodeType.
type NodeType uint8

const (
	NodeGroup          NodeType = iota // ordered children, bounds are their union
	NodeTransformGroup                 // group whose children are placed by a local transform
	NodeSwitch                         // group rendering at most one child; bounds cover all children
	NodeSharedGroup                    // group intended for attachment under many parents
	NodeSharedNode                     // single-child wrapper whose bounds pass the child's through
	NodeShape                          // geometry leaf
)

func (t NodeType) String() string {
	switch t {
	case NodeGroup:
		return "group"
	case NodeTransformGroup:
		return "transform-group"
	case NodeSwitch:
		return "switch"
	case NodeSharedGroup:
		return "shared-group"
	case NodeSharedNode:
		return "shared-node"
	case NodeShape:
		return "shape"
	default:
		return fmt.Sprintf("NodeType(%d)", uint8(t))
	}
}

// holdsChildren reports whether nodes of type t keep an ordered child
// list managed by AddChild and friends.
func (t NodeType) holdsChildren() bool {
	switch t {
	case NodeGroup, NodeTransformGroup, NodeSwitch, NodeSharedGroup:
		return true
	}
	return false
}

// NodeID identifies a node in a Graph. It stays valid until the node
// is destroyed; IDs of destroyed nodes are never handed out again.
type NodeID uint64

// Nil represents no node.
const Nil NodeID = 0

func makeID(index int, gen uint32) NodeID {
	return NodeID(gen)<<32 | NodeID(uint32(index+1))
}

func (id NodeID) index() int  { return int(uint32(id)) - 1 }
func (id NodeID) gen() uint32 { return uint32(id >> 32) }

func (id NodeID) String() string {
	if id == Nil {
		return "nil"
	}
	return fmt.Sprintf("#%d.%d", id.index(), id.gen())
}

type node struct {
	gen   uint32
	inUse bool

	name string
	typ  NodeType

	// Parents are weak references; a node never owns its parents.
	parents  []NodeID
	children []NodeID

	live        bool
	liveCount   int
	activations int

	bounds      BoundingVolume
	implicit    bool
	boundsDirty bool

	pickMask PickMask
	owner    ResourceOwner

	// Shape
	coords          []float32
	vertexCount     int
	colors          []float32
	colorComponents int
	attrs           [numAttributeKinds]Attribute
	attrSet         uint16

	// TransformGroup
	transform linear.M4

	// Switch
	active int
}

// Graph is an arena of scene nodes. Nodes refer to each other by
// NodeID; the graph owns every node.
//
// A Graph is not safe for concurrent mutation. One application thread
// mutates it while the attached UpdateHandler says so, and a traversal
// reads it in between.
type Graph struct {
	slots []node
	free  []int

	handler UpdateHandler
	sink    EventSink
	logger  *slog.Logger
	debug   bool
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{logger: slog.Default()}
}

func (g *Graph) alloc(name string, typ NodeType) NodeID {
	var idx int
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
	} else {
		idx = len(g.slots)
		g.slots = append(g.slots, node{})
	}
	n := &g.slots[idx]
	n.gen++
	n.inUse = true
	n.name = name
	n.typ = typ
	n.implicit = true
	n.boundsDirty = true
	n.pickMask = PickGeometry | PickBounds
	n.transform = linear.I()
	n.active = -1
	return makeID(idx, n.gen)
}

// node returns the record for id. It panics on unknown or destroyed IDs.
func (g *Graph) node(id NodeID) *node {
	i := id.index()
	if i < 0 || i >= len(g.slots) || g.slots[i].gen != id.gen() || !g.slots[i].inUse {
		panic(fmt.Sprintf("arbor: unknown node %s", id))
	}
	return &g.slots[i]
}

// NewGroup creates a group node.
func (g *Graph) NewGroup(name string) NodeID { return g.alloc(name, NodeGroup) }

// NewTransformGroup creates a transform group with an identity transform.
func (g *Graph) NewTransformGroup(name string) NodeID { return g.alloc(name, NodeTransformGroup) }

// NewSwitch creates a switch with no active child.
func (g *Graph) NewSwitch(name string) NodeID { return g.alloc(name, NodeSwitch) }

// NewSharedGroup creates a shared group.
func (g *Graph) NewSharedGroup(name string) NodeID { return g.alloc(name, NodeSharedGroup) }

// NewSharedNode creates a shared node with no child.
func (g *Graph) NewSharedNode(name string) NodeID { return g.alloc(name, NodeSharedNode) }

// NewShape creates a shape with no geometry. Its bounds are void until
// vertices are set.
func (g *Graph) NewShape(name string) NodeID { return g.alloc(name, NodeShape) }

// Contains reports whether id refers to a node of g that has not been
// destroyed.
func (g *Graph) Contains(id NodeID) bool {
	i := id.index()
	return i >= 0 && i < len(g.slots) && g.slots[i].inUse && g.slots[i].gen == id.gen()
}

// Len returns the number of nodes in g.
func (g *Graph) Len() int { return len(g.slots) - len(g.free) }

// Name returns the name the node was created with.
func (g *Graph) Name(id NodeID) string { return g.node(id).name }

// Type returns the node type.
func (g *Graph) Type(id NodeID) NodeType { return g.node(id).typ }

// Parents returns the registered parents in attachment order.
// The returned slice MUST NOT be mutated by the caller.
func (g *Graph) Parents(id NodeID) []NodeID { return g.node(id).parents }

// Children returns the child list. The returned slice MUST NOT be
// mutated by the caller. A shared node reports its single child.
func (g *Graph) Children(id NodeID) []NodeID { return g.node(id).children }

// NumChildren returns the number of children.
func (g *Graph) NumChildren(id NodeID) int { return len(g.node(id).children) }

// ChildAt returns the child at the given index.
func (g *Graph) ChildAt(id NodeID, index int) NodeID { return g.node(id).children[index] }

// Destroy removes a node from the graph. The node must be detached from
// every parent and not live. Its children lose it as a parent but are
// otherwise untouched.
func (g *Graph) Destroy(id NodeID) error {
	n := g.node(id)
	if len(n.parents) > 0 {
		return fmt.Errorf("%w: destroy %s %s: still attached to %d parents",
			ErrIllegalArgument, n.typ, id, len(n.parents))
	}
	if n.live {
		return fmt.Errorf("%w: destroy %s %s: node is live", ErrIllegalArgument, n.typ, id)
	}
	children := n.children
	for _, c := range children {
		cn := g.node(c)
		cn.parents = removeID(cn.parents, id)
	}
	idx := id.index()
	gen := n.gen
	g.slots[idx] = node{gen: gen}
	g.free = append(g.free, idx)
	for _, c := range children {
		g.emit(GraphEvent{Type: EventDetached, Node: c, Parent: id})
	}
	return nil
}

// indexOf returns the position of id in ids, or -1.
func indexOf(ids []NodeID, id NodeID) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

// removeID removes the first occurrence of id from ids, preserving
// order. The vacated tail slot is zeroed.
func removeID(ids []NodeID, id NodeID) []NodeID {
	i := indexOf(ids, id)
	if i < 0 {
		return ids
	}
	copy(ids[i:], ids[i+1:])
	ids[len(ids)-1] = Nil
	return ids[:len(ids)-1]
}
