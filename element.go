package stitch

// StyleID is an opaque token grouping elements that should share generated
// stylesheet rules. It is never interpreted structurally; the renderer only
// uses it as a lookup key. The empty ID means unstyled.
type StyleID string

// NoStyle is the absent style identifier.
const NoStyle StyleID = ""

// Element is the recursive tree describing layout intent. It is a sealed sum
// type: the resolver and renderer match exhaustively over the variants below.
// All variants are immutable values; transformations return new trees.
type Element interface {
	element()
}

// TextDecoration selects the markup decoration applied to a Text leaf.
type TextDecoration uint8

const (
	DecorationNone      TextDecoration = iota // bare text
	DecorationBold                            // <b>
	DecorationItalic                          // <i>
	DecorationStrike                          // <s>
	DecorationUnderline                       // <u>
	DecorationSub                             // <sub>
	DecorationSuper                           // <sup>
)

// Empty renders nothing.
type Empty struct{}

// Text is a leaf containing string content, optionally decorated.
// Bare text cannot carry attributes; wrap it in a Node first (see
// AddAttrToNonText).
type Text struct {
	Decoration TextDecoration
	Content    string
}

// Raw is opaque passthrough markup from outside the system. It is emitted
// verbatim and never restyled.
type Raw struct {
	Content string
}

// Spacer is a sizing hint consumed by the parent layout only. Multiple
// scales the parent's declared spacing unit. Outside a spacing context it
// degenerates to zero size.
type Spacer struct {
	Multiple float64
}

// Node is a single-child wrapper element. Nearby holds the optional
// secondary element list used for nearby positioning; nil means absent.
type Node struct {
	Tag    string
	Style  StyleID
	Attrs  []Attribute
	Child  Element
	Nearby []Element
}

// Layout is a multi-child container. Kind decides flex, grid, or text flow
// semantics for its children.
type Layout struct {
	Tag      string
	Kind     LayoutKind
	Style    StyleID
	Attrs    []Attribute
	Children Children
}

func (Empty) element()  {}
func (Text) element()   {}
func (Raw) element()    {}
func (Spacer) element() {}
func (Node) element()   {}
func (Layout) element() {}

// Children is an ordered child list. Keys is a parallel list reserved for
// keyed rendering; the renderer ignores it today but builders preserve it.
type Children struct {
	Elems []Element
	Keys  []string
}

// Unkeyed builds an ordered, unkeyed child list.
func Unkeyed(elems ...Element) Children {
	return Children{Elems: elems}
}

// LayoutKind is the sealed sum of container semantics.
type LayoutKind interface {
	layoutKind()
}

// TextFlow stacks children in document order; children aligned left or
// right float out of normal flow. Clearfix appends a trailing clearing rule
// after floated children.
type TextFlow struct {
	Clearfix bool
}

// FlexLayout lays children along a main axis, optionally wrapping.
type FlexLayout struct {
	Direction Direction
	Wrap      bool
}

// GridLayout places children against a row/column template, by absolute
// coordinates or by named area.
type GridLayout struct {
	Template GridTemplate
}

func (TextFlow) layoutKind()   {}
func (FlexLayout) layoutKind() {}
func (GridLayout) layoutKind() {}

// Direction specifies the main axis for laying out flex children.
type Direction uint8

const (
	Rightward Direction = iota // children laid out left-to-right
	Downward                   // children laid out top-to-bottom
)

// GridTemplate declares the track sizes a grid layout is resolved against.
// Areas is a row-major table of area names, used only by named grids; nil
// for coordinate grids.
type GridTemplate struct {
	Rows    []Length
	Columns []Length
	Areas   [][]string
}
