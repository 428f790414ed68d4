package arbor

import "fmt"

// AttributeKind selects the variant of an Attribute.
type AttributeKind uint8

const (
	AttrPolygon AttributeKind = iota // face culling and fill mode
	AttrLine                         // line width
	AttrPoint                        // point size
	AttrBlend                        // blend factors
	AttrDepth                        // depth test and write
	AttrStencil                      // stencil test
	AttrAlpha                        // alpha test
	AttrShader                       // shader program

	numAttributeKinds = int(iota)
)

func (k AttributeKind) String() string {
	switch k {
	case AttrPolygon:
		return "polygon"
	case AttrLine:
		return "line"
	case AttrPoint:
		return "point"
	case AttrBlend:
		return "blend"
	case AttrDepth:
		return "depth"
	case AttrStencil:
		return "stencil"
	case AttrAlpha:
		return "alpha"
	case AttrShader:
		return "shader"
	default:
		return fmt.Sprintf("AttributeKind(%d)", uint8(k))
	}
}

// CullFace selects which polygon faces are discarded.
type CullFace uint8

const (
	CullBack CullFace = iota
	CullFront
	CullNone
)

// FillMode selects how polygons are rasterized.
type FillMode uint8

const (
	FillSolid FillMode = iota
	FillLines
	FillPoints
)

// BlendFactor is a source or destination blend factor.
type BlendFactor uint8

const (
	BlendOne BlendFactor = iota
	BlendZero
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstColor
	BlendOneMinusSrcColor
)

// CompareFunc is the comparison used by depth, stencil and alpha tests.
type CompareFunc uint8

const (
	CompareLess CompareFunc = iota
	CompareLessEqual
	CompareEqual
	CompareGreater
	CompareGreaterEqual
	CompareNotEqual
	CompareAlways
	CompareNever
)

// Attribute is one render state slot of a shape. A single flat struct
// covers every kind; only the fields of Kind are meaningful.
type Attribute struct {
	Kind AttributeKind

	// AttrPolygon
	Cull     CullFace
	Fill     FillMode
	FrontCCW bool

	// AttrLine, AttrPoint
	Width float32

	// AttrBlend
	Src, Dst BlendFactor

	// AttrDepth, AttrStencil, AttrAlpha
	Func       CompareFunc
	DepthWrite bool
	StencilRef int32
	Mask       uint32
	AlphaRef   float32

	// AttrShader. The program is released like any other per-context
	// resource once the shape stops being live.
	Program ResourceOwner
}

// Validate reports malformed attribute values.
func (a Attribute) Validate() error {
	if int(a.Kind) >= numAttributeKinds {
		return fmt.Errorf("%w: unknown attribute kind %d", ErrIllegalArgument, a.Kind)
	}
	switch a.Kind {
	case AttrLine, AttrPoint:
		if a.Width <= 0 {
			return fmt.Errorf("%w: %s width %v must be positive", ErrIllegalArgument, a.Kind, a.Width)
		}
	case AttrAlpha:
		if a.AlphaRef < 0 || a.AlphaRef > 1 {
			return fmt.Errorf("%w: alpha reference %v outside [0, 1]", ErrIllegalArgument, a.AlphaRef)
		}
	case AttrShader:
		if a.Program == nil {
			return fmt.Errorf("%w: shader attribute without a program", ErrIllegalArgument)
		}
	}
	return nil
}

// SetAttribute stores attr in the shape's slot for attr.Kind, replacing
// what was there. Render state never affects bounds, so this is a data
// write. A replaced shader program of a live shape is handed to the
// update handler for release.
func (g *Graph) SetAttribute(id NodeID, attr Attribute) error {
	n := g.node(id)
	if n.typ != NodeShape {
		return fmt.Errorf("%w: %s %s has no attributes", ErrIllegalArgument, n.typ, id)
	}
	if err := attr.Validate(); err != nil {
		return err
	}
	if err := g.checkWrite(id, n, DataWrite); err != nil {
		return err
	}
	g.retireProgram(n, attr)
	n.attrs[attr.Kind] = attr
	n.attrSet |= 1 << attr.Kind
	return nil
}

// ClearAttribute empties the shape's slot for kind.
func (g *Graph) ClearAttribute(id NodeID, kind AttributeKind) error {
	n := g.node(id)
	if n.typ != NodeShape || int(kind) >= numAttributeKinds {
		return fmt.Errorf("%w: no %s attribute slot on %s %s", ErrIllegalArgument, kind, n.typ, id)
	}
	if err := g.checkWrite(id, n, DataWrite); err != nil {
		return err
	}
	g.retireProgram(n, Attribute{Kind: kind})
	n.attrs[kind] = Attribute{}
	n.attrSet &^= 1 << kind
	return nil
}

// Attribute returns the shape's attribute of the given kind and whether
// the slot is set.
func (g *Graph) Attribute(id NodeID, kind AttributeKind) (Attribute, bool) {
	n := g.node(id)
	if int(kind) >= numAttributeKinds || n.attrSet&(1<<kind) == 0 {
		return Attribute{}, false
	}
	return n.attrs[kind], true
}

// retireProgram releases the shader program about to be replaced by
// next when the shape is live and the program changes.
func (g *Graph) retireProgram(n *node, next Attribute) {
	if next.Kind != AttrShader || n.attrSet&(1<<AttrShader) == 0 || !n.live {
		return
	}
	old := n.attrs[AttrShader].Program
	if old == nil || old == next.Program {
		return
	}
	if g.handler != nil {
		g.handler.RequestDeletion(old)
		return
	}
	old.ReleaseResources()
}
