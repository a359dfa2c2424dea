package stitch

import "fmt"

// Builders assemble single Element or Layout values from their arguments.
// They never inspect or mutate children beyond wrapping; tag overrides go
// through SetNode, not ad hoc mutation.

// El wraps a single child in a styled container.
func El(style StyleID, attrs []Attribute, child Element) Element {
	return Node{Tag: "div", Style: style, Attrs: attrs, Child: child}
}

// Row lays children out left-to-right.
func Row(style StyleID, attrs []Attribute, children ...Element) Element {
	return flex(Rightward, false, style, attrs, children)
}

// Column lays children out top-to-bottom.
func Column(style StyleID, attrs []Attribute, children ...Element) Element {
	return flex(Downward, false, style, attrs, children)
}

// WrappedRow is a Row whose children wrap onto new lines.
func WrappedRow(style StyleID, attrs []Attribute, children ...Element) Element {
	return flex(Rightward, true, style, attrs, children)
}

// WrappedColumn is a Column whose children wrap onto new columns.
func WrappedColumn(style StyleID, attrs []Attribute, children ...Element) Element {
	return flex(Downward, true, style, attrs, children)
}

func flex(dir Direction, wrap bool, style StyleID, attrs []Attribute, children []Element) Element {
	return Layout{
		Tag:      "div",
		Kind:     FlexLayout{Direction: dir, Wrap: wrap},
		Style:    style,
		Attrs:    attrs,
		Children: Unkeyed(children...),
	}
}

// TextLayout stacks children in document order with float-aware flow and a
// trailing clearing rule after floated children.
func TextLayout(style StyleID, attrs []Attribute, children ...Element) Element {
	return Layout{
		Tag:      "div",
		Kind:     TextFlow{Clearfix: true},
		Style:    style,
		Attrs:    attrs,
		Children: Unkeyed(children...),
	}
}

// Paragraph is a text layout without the clearing rule whose children are
// all marked inline. Naked text children are wrapped in a plain unstyled
// node first, because inline styling cannot attach to a bare text leaf.
func Paragraph(style StyleID, attrs []Attribute, children ...Element) Element {
	inlined := make([]Element, len(children))
	for i, c := range children {
		inlined[i] = AddAttrToNonText(inline(), c)
	}
	return Layout{
		Tag:      "p",
		Kind:     TextFlow{},
		Style:    style,
		Attrs:    attrs,
		Children: Unkeyed(inlined...),
	}
}

// Grid places children against the template by absolute coordinates; each
// child carries a GridPosition attribute.
func Grid(style StyleID, attrs []Attribute, template GridTemplate, children ...Element) Element {
	return Layout{
		Tag:      "div",
		Kind:     GridLayout{Template: template},
		Style:    style,
		Attrs:    attrs,
		Children: Unkeyed(children...),
	}
}

// NamedGrid places children against the template's named areas; each child
// carries a GridArea attribute and the template carries the area table.
func NamedGrid(style StyleID, attrs []Attribute, template GridTemplate, children ...Element) Element {
	return Grid(style, attrs, template, children...)
}

// Image renders an image with a textual description.
func Image(style StyleID, attrs []Attribute, src, description string) Element {
	attrs = appendAttrs(attrs, []Attribute{HTMLAttr("src", src), HTMLAttr("alt", description)})
	return Node{Tag: "img", Style: style, Attrs: attrs, Child: Empty{}}
}

// Circle renders a circular container: width and height are forced to twice
// the radius and a raw corner-radius style attribute is synthesized.
func Circle(radius int, style StyleID, attrs []Attribute, child Element) Element {
	extra := []Attribute{
		HTMLAttr("style", fmt.Sprintf("border-radius:%dpx", radius)),
		Width(Px(2 * radius)),
		Height(Px(2 * radius)),
	}
	return Node{Tag: "div", Style: style, Attrs: appendAttrs(attrs, extra), Child: child}
}

// NewSpacer returns a spacer sized as a multiple of the parent's declared
// spacing unit.
func NewSpacer(multiple float64) Element {
	return Spacer{Multiple: multiple}
}

// TextEl returns undecorated text.
func TextEl(content string) Element {
	return Text{Content: content}
}

// Bold returns text rendered in a <b> element.
func Bold(content string) Element {
	return Text{Decoration: DecorationBold, Content: content}
}

// Italic returns text rendered in an <i> element.
func Italic(content string) Element {
	return Text{Decoration: DecorationItalic, Content: content}
}

// Strike returns text rendered in an <s> element.
func Strike(content string) Element {
	return Text{Decoration: DecorationStrike, Content: content}
}

// Underline returns text rendered in a <u> element.
func Underline(content string) Element {
	return Text{Decoration: DecorationUnderline, Content: content}
}

// Sub returns text rendered in a <sub> element.
func Sub(content string) Element {
	return Text{Decoration: DecorationSub, Content: content}
}

// Super returns text rendered in a <sup> element.
func Super(content string) Element {
	return Text{Decoration: DecorationSuper, Content: content}
}

// Hairline renders a thin horizontal rule.
func Hairline() Element {
	return Node{Tag: "hr", Child: Empty{}}
}

// Break forces a line break.
func Break() Element {
	return Node{Tag: "br", Child: Empty{}}
}
