package stitch

import (
	"strconv"
	"strings"

	"github.com/stitchui/stitch/internal/css"
)

// spacingUnit is the pixel size of one spacing multiple.
const spacingUnit = 8.0

// renderContext carries inherited layout state down the tree walk: the
// spacing unit and direction declared by the enclosing container, plus which
// container semantics the current element lives under.
type renderContext struct {
	unit      float64 // spacing in px declared by the parent container
	direction Direction
	inFlex    bool
	inText    bool
	grid      *GridLayout // non-nil when the parent is a grid
}

func rootContext() renderContext {
	return renderContext{direction: Downward}
}

// forChildren clears container-specific state when descending through a
// plain wrapper Node, which establishes no layout context of its own.
func (ctx renderContext) forChildren() renderContext {
	ctx.inFlex = false
	ctx.inText = false
	ctx.grid = nil
	return ctx
}

func decl(property, value string) css.Decl {
	return css.Decl{Property: property, Value: value}
}

// containerDecls computes a Layout's own container rules and the context its
// children inherit. The spacing unit comes from the last spacing-family
// attribute in the list; earlier occurrences lose.
func containerDecls(l Layout) ([]css.Decl, renderContext) {
	ctx := renderContext{direction: Downward}
	if m, ok := lastSpacing(l.Attrs); ok {
		ctx.unit = m * spacingUnit
	}

	var decls []css.Decl
	switch k := l.Kind.(type) {
	case FlexLayout:
		decls = append(decls, decl("display", "flex"))
		if k.Direction == Rightward {
			decls = append(decls, decl("flex-direction", "row"))
		} else {
			decls = append(decls, decl("flex-direction", "column"))
		}
		if k.Wrap {
			decls = append(decls, decl("flex-wrap", "wrap"))
		}
		if ctx.unit > 0 {
			decls = append(decls, decl("gap", px(ctx.unit)))
		}
		ctx.direction = k.Direction
		ctx.inFlex = true
	case TextFlow:
		decls = append(decls, decl("display", "block"))
		ctx.inText = true
	case GridLayout:
		decls = append(decls, decl("display", "grid"))
		if len(k.Template.Rows) > 0 {
			decls = append(decls, decl("grid-template-rows", trackList(k.Template.Rows)))
		}
		if len(k.Template.Columns) > 0 {
			decls = append(decls, decl("grid-template-columns", trackList(k.Template.Columns)))
		}
		if len(k.Template.Areas) > 0 {
			decls = append(decls, decl("grid-template-areas", areaList(k.Template.Areas)))
		}
		if ctx.unit > 0 {
			decls = append(decls, decl("gap", px(ctx.unit)))
		}
		ctx.grid = &k
	}
	return decls, ctx
}

// attrDecls converts an element's intrinsic attributes (sizing, padding,
// justification, inline flow) to declarations in attribute-list order.
// Spacing-family attributes are consumed by the container and markup
// attributes pass through to the node, so neither produces declarations
// here.
func attrDecls(attrs []Attribute, ctx renderContext) []css.Decl {
	var decls []css.Decl
	for _, a := range attrs {
		switch t := a.(type) {
		case widthAttr:
			mainAxis := ctx.inFlex && ctx.direction == Rightward
			decls = append(decls, lengthDecls("width", t.l, mainAxis)...)
		case heightAttr:
			mainAxis := ctx.inFlex && ctx.direction == Downward
			decls = append(decls, lengthDecls("height", t.l, mainAxis)...)
		case paddingAttr:
			decls = append(decls, decl("padding", edgesValue(t.edges)))
		case justifyAttr:
			decls = append(decls, decl("justify-content", justifyValue(t.j)))
		case inlineAttr:
			decls = append(decls, decl("display", "inline"))
		}
	}
	return decls
}

// placementDecls converts context-dependent attributes (alignment, grid
// placement, positioning frames) to declarations. Alignment on the parent's
// main axis is ignored; a grid child carrying more than one placement
// attribute keeps the first in list order. Outside the matching context a
// placement attribute silently produces nothing, per the structural-mismatch
// policy.
func placementDecls(attrs []Attribute, ctx renderContext) []css.Decl {
	var decls []css.Decl
	placed := false
	for _, a := range attrs {
		switch t := a.(type) {
		case alignXAttr:
			if ctx.inFlex && ctx.direction == Downward {
				decls = append(decls, decl("align-self", alignXValue(t.h)))
			} else if ctx.inText {
				switch t.h {
				case Left:
					decls = append(decls, decl("float", "left"))
				case Right:
					decls = append(decls, decl("float", "right"))
				}
			}
		case alignYAttr:
			if ctx.inFlex && ctx.direction == Rightward {
				decls = append(decls, decl("align-self", alignYValue(t.v)))
			}
		case gridPosAttr:
			if ctx.grid != nil && !placed {
				placed = true
				decls = append(decls,
					decl("grid-row", spanValue(t.row, t.rowSpan)),
					decl("grid-column", spanValue(t.col, t.colSpan)),
				)
			}
		case gridAreaAttr:
			if ctx.grid != nil && !placed {
				placed = true
				decls = append(decls, decl("grid-area", t.name))
			}
		case frameAttr:
			decls = append(decls, frameDecls(t)...)
		}
	}
	return decls
}

// spacerDecls sizes a spacer against the parent's declared spacing unit.
// Outside a spacing context the unit is zero and the spacer degenerates.
func spacerDecls(s Spacer, ctx renderContext) []css.Decl {
	return []css.Decl{
		decl("flex-basis", px(s.Multiple*ctx.unit)),
		decl("flex-grow", "0"),
		decl("flex-shrink", "0"),
	}
}

func clearfixDecls() []css.Decl {
	return []css.Decl{
		decl("content", `""`),
		decl("display", "block"),
		decl("clear", "both"),
	}
}

func frameDecls(f frameAttr) []css.Decl {
	switch f.pos {
	case FramePositioned:
		return []css.Decl{decl("position", "relative")}
	case FrameScreen:
		return []css.Decl{decl("position", "fixed"), decl("top", "0"), decl("left", "0")}
	}
	switch f.dir {
	case NearbyAbove:
		return []css.Decl{decl("position", "absolute"), decl("bottom", "100%"), decl("left", "0")}
	case NearbyBelow:
		return []css.Decl{decl("position", "absolute"), decl("top", "100%"), decl("left", "0")}
	case NearbyOnLeft:
		return []css.Decl{decl("position", "absolute"), decl("right", "100%"), decl("top", "0")}
	case NearbyOnRight:
		return []css.Decl{decl("position", "absolute"), decl("left", "100%"), decl("top", "0")}
	default: // NearbyWithin
		return []css.Decl{decl("position", "absolute"), decl("top", "0"), decl("left", "0")}
	}
}

// spanValue renders a grid line with an optional span.
func spanValue(start, span int) string {
	if span <= 1 {
		return strconv.Itoa(start)
	}
	return strconv.Itoa(start) + "/span " + strconv.Itoa(span)
}

// lengthDecls converts a Length into declarations for the given property.
// Fill lengths become flex growth on the parent's main axis and a full-size
// dimension elsewhere.
func lengthDecls(property string, l Length, mainAxis bool) []css.Decl {
	switch t := l.(type) {
	case pxLength:
		return []css.Decl{decl(property, intPx(t.n))}
	case percentLength:
		return []css.Decl{decl(property, formatFloat(t.p) + "%")}
	case fillLength:
		if mainAxis {
			return []css.Decl{decl("flex-grow", strconv.Itoa(t.portion))}
		}
		return []css.Decl{decl(property, "100%")}
	case contentLength:
		return []css.Decl{decl(property, "max-content")}
	case minLength:
		return append(lengthDecls(property, t.inner, mainAxis), decl("min-"+property, intPx(t.floor)))
	case maxLength:
		return append(lengthDecls(property, t.inner, mainAxis), decl("max-"+property, intPx(t.ceil)))
	default:
		return nil
	}
}

// trackSize renders a Length as a grid track size.
func trackSize(l Length) string {
	switch t := l.(type) {
	case pxLength:
		return intPx(t.n)
	case percentLength:
		return formatFloat(t.p) + "%"
	case fillLength:
		return strconv.Itoa(t.portion) + "fr"
	case contentLength:
		return "max-content"
	case minLength:
		return "minmax(" + intPx(t.floor) + "," + trackSize(t.inner) + ")"
	case maxLength:
		return "minmax(" + trackSize(t.inner) + "," + intPx(t.ceil) + ")"
	default:
		return "auto"
	}
}

func trackList(lengths []Length) string {
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = trackSize(l)
	}
	return strings.Join(parts, " ")
}

// areaList serializes a row-major named-area table as quoted rows.
func areaList(areas [][]string) string {
	rows := make([]string, len(areas))
	for i, row := range areas {
		rows[i] = `"` + strings.Join(row, " ") + `"`
	}
	return strings.Join(rows, " ")
}

func alignXValue(h HAlign) string {
	switch h {
	case CenterX:
		return "center"
	case Right:
		return "flex-end"
	default:
		return "flex-start"
	}
}

func alignYValue(v VAlign) string {
	switch v {
	case CenterY:
		return "center"
	case Bottom:
		return "flex-end"
	default:
		return "flex-start"
	}
}

func justifyValue(j Justify) string {
	switch j {
	case JustifyEnd:
		return "flex-end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	default:
		return "flex-start"
	}
}

func edgesValue(e Edges) string {
	return intPx(e.Top) + " " + intPx(e.Right) + " " + intPx(e.Bottom) + " " + intPx(e.Left)
}

func intPx(n int) string {
	return strconv.Itoa(n) + "px"
}

func px(v float64) string {
	return formatFloat(v) + "px"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
