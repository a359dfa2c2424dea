package stitch

// Attribute is an opaque, immutable modifier attached to an element. Lists
// of attributes are order-independent for resolution except within the
// spacing family, where the last occurrence wins.
type Attribute interface {
	attribute()
}

// HAlign specifies horizontal placement on the cross axis.
type HAlign uint8

const (
	Left HAlign = iota
	CenterX
	Right
)

// VAlign specifies vertical placement on the cross axis.
type VAlign uint8

const (
	Top VAlign = iota
	CenterY
	Bottom
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // pack at start
	JustifyEnd                         // pack at end
	JustifyCenter                      // center children
	JustifySpaceBetween                // even space between, none at edges
	JustifySpaceAround                 // even space around each child
	JustifySpaceEvenly                 // equal space between and at edges
)

// FramePosition tags how an element participates in nearby positioning.
type FramePosition uint8

const (
	FramePositioned FramePosition = iota // anchor for nearby children
	FrameNearby                          // positioned relative to the anchor
	FrameScreen                          // fixed to the viewport
)

// NearbyDirection is the side a nearby element attaches to.
type NearbyDirection uint8

const (
	NearbyWithin NearbyDirection = iota
	NearbyAbove
	NearbyBelow
	NearbyOnLeft
	NearbyOnRight
)

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

type widthAttr struct{ l Length }

type heightAttr struct{ l Length }

type spacingAttr struct{ multiple float64 }

type gridGapAttr struct{ multiple float64 }

type alignXAttr struct{ h HAlign }

type alignYAttr struct{ v VAlign }

type justifyAttr struct{ j Justify }

type paddingAttr struct{ edges Edges }

type frameAttr struct {
	pos FramePosition
	dir NearbyDirection // meaningful only when pos == FrameNearby
}

type gridPosAttr struct {
	row, col         int
	rowSpan, colSpan int
}

type gridAreaAttr struct{ name string }

type htmlAttr struct{ key, value string }

type eventAttr struct{ name, handler string }

type inlineAttr struct{}

func (widthAttr) attribute()    {}
func (heightAttr) attribute()   {}
func (spacingAttr) attribute()  {}
func (gridGapAttr) attribute()  {}
func (alignXAttr) attribute()   {}
func (alignYAttr) attribute()   {}
func (justifyAttr) attribute()  {}
func (paddingAttr) attribute()  {}
func (frameAttr) attribute()    {}
func (gridPosAttr) attribute()  {}
func (gridAreaAttr) attribute() {}
func (htmlAttr) attribute()     {}
func (eventAttr) attribute()    {}
func (inlineAttr) attribute()   {}

// Width sets the element's width.
func Width(l Length) Attribute {
	return widthAttr{l: l}
}

// Height sets the element's height.
func Height(l Length) Attribute {
	return heightAttr{l: l}
}

// Spacing declares the container's spacing unit as a multiple of the base
// unit. Negative multiples are not validated; they yield an undefined
// visual result.
func Spacing(multiple float64) Attribute {
	return spacingAttr{multiple: multiple}
}

// GridGap declares the gap between grid tracks as a multiple of the base
// spacing unit. Shares the spacing family's last-write-wins rule.
func GridGap(multiple float64) Attribute {
	return gridGapAttr{multiple: multiple}
}

// AlignX places the element horizontally within its parent. Only meaningful
// when the parent's main axis is vertical; alignment on the main axis is
// ignored.
func AlignX(h HAlign) Attribute {
	return alignXAttr{h: h}
}

// AlignY places the element vertically within its parent. Only meaningful
// when the parent's main axis is horizontal.
func AlignY(v VAlign) Attribute {
	return alignYAttr{v: v}
}

// Justified sets how a container distributes children along its main axis.
func Justified(j Justify) Attribute {
	return justifyAttr{j: j}
}

// Padding sets inner spacing on all four edges.
func Padding(edges Edges) Attribute {
	return paddingAttr{edges: edges}
}

// GridPosition places a grid child at absolute coordinates with spans.
// A grid child must carry exactly one placement attribute; carrying both a
// position and a named area is a structural mismatch and the first placement
// in list order wins.
func GridPosition(row, col, rowSpan, colSpan int) Attribute {
	return gridPosAttr{row: row, col: col, rowSpan: rowSpan, colSpan: colSpan}
}

// GridArea places a grid child into a named template area.
func GridArea(name string) Attribute {
	return gridAreaAttr{name: name}
}

// HTMLAttr passes a raw markup attribute through to the emitted node,
// untouched by resolution.
func HTMLAttr(key, value string) Attribute {
	return htmlAttr{key: key, value: value}
}

// OnEvent wraps an input-event markup attribute (e.g. "onchange"). Form
// builders relocate event attributes onto the generated input node, never
// the label wrapper.
func OnEvent(name, handler string) Attribute {
	return eventAttr{name: name, handler: handler}
}

func inline() Attribute {
	return inlineAttr{}
}

// isEvent reports whether a is an input-event attribute. Used by form
// builders to partition attribute lists.
func isEvent(a Attribute) bool {
	_, ok := a.(eventAttr)
	return ok
}

// partitionEvents splits attrs into input-event attributes and the rest,
// preserving relative order within each part.
func partitionEvents(attrs []Attribute) (events, rest []Attribute) {
	for _, a := range attrs {
		if isEvent(a) {
			events = append(events, a)
		} else {
			rest = append(rest, a)
		}
	}
	return events, rest
}

// lastSpacing returns the winning spacing-family multiple, scanning attrs in
// order so the last occurrence wins. The bool reports whether any was found.
func lastSpacing(attrs []Attribute) (float64, bool) {
	var multiple float64
	var found bool
	for _, a := range attrs {
		switch t := a.(type) {
		case spacingAttr:
			multiple, found = t.multiple, true
		case gridGapAttr:
			multiple, found = t.multiple, true
		}
	}
	return multiple, found
}
