package stitch

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"

	"github.com/stitchui/stitch/internal/css"
)

// StyleLookup resolves opaque style identifiers to stylesheet declarations.
// Compiling identifiers into rules is an external collaborator's job; the
// renderer only consumes the lookup. Unknown identifiers resolve to no
// declarations.
type StyleLookup interface {
	Rules(id StyleID) []Decl
}

// StyleMap is a StyleLookup backed by a plain map.
type StyleMap map[StyleID][]Decl

// Rules implements StyleLookup.
func (m StyleMap) Rules(id StyleID) []Decl {
	return m[id]
}

// Renderer compiles element trees to markup, interning one deduplicated
// class per distinct (tag, resolved-rule-set) pair. The interning map is
// explicit state owned by the Renderer, never package-global, so rendering
// stays referentially transparent. Class names are assigned in first-seen
// walk order, making output a pure function of the input trees.
type Renderer struct {
	lookup StyleLookup
	sheet  *css.Sheet
	names  map[string]string
}

// NewRenderer returns a Renderer with an empty sheet. A nil lookup renders
// every style identifier as unstyled.
func NewRenderer(lookup StyleLookup) *Renderer {
	return &Renderer{
		lookup: lookup,
		sheet:  css.NewSheet(),
		names:  make(map[string]string),
	}
}

// Root compiles one tree to markup, accumulating its rules into the shared
// sheet. Pair with Embed to place a single stylesheet across several
// independently rendered trees.
func (r *Renderer) Root(el Element) g.Node {
	return r.walk(el, rootContext())
}

// Embed returns the accumulated stylesheet as a <style> fragment. Call it
// after every Root tree has been compiled.
func (r *Renderer) Embed() g.Node {
	return g.El("style", g.Raw(r.sheet.String()))
}

// Render compiles a single tree with its stylesheet injected at the tree
// root. Rendering the same tree twice yields byte-identical output.
func Render(lookup StyleLookup, el Element) g.Node {
	r := NewRenderer(lookup)
	tree := r.Root(el)
	return g.Group{r.Embed(), tree}
}

// WriteHTML renders a compiled node to w, propagating the write error.
func WriteHTML(w io.Writer, n g.Node) error {
	return n.Render(w)
}

// class interns a (tag, variant, declaration-set) triple, adding the backing
// rule to the sheet the first time it is seen. The variant distinguishes
// styles whose declarations match but whose attached pseudo rules differ, so
// a clearing layout never shares a class with a non-clearing twin.
func (r *Renderer) class(tag, variant string, decls []css.Decl) string {
	key := tag + "|" + variant + "|" + css.Serialize(decls)
	if name, ok := r.names[key]; ok {
		return name
	}
	name := fmt.Sprintf("s%d", len(r.names)+1)
	r.names[key] = name
	r.sheet.Add(css.Rule{Selector: "." + name, Decls: decls})
	return name
}

// declsFor computes the full resolved declaration list for one element:
// looked-up style rules first, then attribute-derived declarations, then
// placement derived from the surrounding context. Attributes override style
// rules by coming later in the block.
func (r *Renderer) declsFor(style StyleID, attrs []Attribute, ctx renderContext) []css.Decl {
	var decls []css.Decl
	if r.lookup != nil && style != NoStyle {
		decls = append(decls, r.lookup.Rules(style)...)
	}
	decls = append(decls, attrDecls(attrs, ctx)...)
	return append(decls, placementDecls(attrs, ctx)...)
}

func (r *Renderer) walk(el Element, ctx renderContext) g.Node {
	switch t := el.(type) {
	case nil:
		return nil
	case Empty:
		return nil
	case Text:
		return textNode(t)
	case Raw:
		return g.Raw(t.Content)
	case Spacer:
		return g.El("span", g.Attr("class", r.class("span", "", spacerDecls(t, ctx))))
	case Node:
		return r.node(t, ctx)
	case Layout:
		return r.layout(t, ctx)
	default:
		return nil
	}
}

func (r *Renderer) node(n Node, ctx renderContext) g.Node {
	decls := r.declsFor(n.Style, n.Attrs, ctx)
	if len(n.Nearby) > 0 && !hasPosition(decls) {
		decls = append(decls, decl("position", "relative"))
	}

	var args []g.Node
	if len(decls) > 0 {
		args = append(args, g.Attr("class", r.class(n.Tag, "", decls)))
	}
	args = append(args, markupAttrs(n.Attrs)...)

	childCtx := ctx.forChildren()
	if c := r.walk(n.Child, childCtx); c != nil {
		args = append(args, c)
	}
	for _, nb := range n.Nearby {
		if c := r.walk(nb, childCtx); c != nil {
			args = append(args, c)
		}
	}
	return g.El(n.Tag, args...)
}

func (r *Renderer) layout(l Layout, ctx renderContext) g.Node {
	own, childCtx := containerDecls(l)
	decls := append(own, r.declsFor(l.Style, l.Attrs, ctx)...)

	variant := ""
	if tf, ok := l.Kind.(TextFlow); ok && tf.Clearfix {
		variant = "clearfix"
	}
	class := r.class(l.Tag, variant, decls)

	// The clearing rule rides on the container's class, so deduplication of
	// the class deduplicates the pseudo rule with it.
	if variant == "clearfix" {
		r.sheet.Add(css.Rule{Selector: "." + class + "::after", Decls: clearfixDecls()})
	}

	args := []g.Node{g.Attr("class", class)}
	args = append(args, markupAttrs(l.Attrs)...)
	for _, child := range l.Children.Elems {
		if c := r.walk(child, childCtx); c != nil {
			args = append(args, c)
		}
	}
	return g.El(l.Tag, args...)
}

// markupAttrs passes raw markup attributes and input events through to the
// emitted node; they never contribute stylesheet declarations.
func markupAttrs(attrs []Attribute) []g.Node {
	var out []g.Node
	for _, a := range attrs {
		switch t := a.(type) {
		case htmlAttr:
			out = append(out, g.Attr(t.key, t.value))
		case eventAttr:
			out = append(out, g.Attr(t.name, t.handler))
		}
	}
	return out
}

func textNode(t Text) g.Node {
	switch t.Decoration {
	case DecorationBold:
		return g.El("b", g.Text(t.Content))
	case DecorationItalic:
		return g.El("i", g.Text(t.Content))
	case DecorationStrike:
		return g.El("s", g.Text(t.Content))
	case DecorationUnderline:
		return g.El("u", g.Text(t.Content))
	case DecorationSub:
		return g.El("sub", g.Text(t.Content))
	case DecorationSuper:
		return g.El("sup", g.Text(t.Content))
	default:
		return g.Text(t.Content)
	}
}

func hasPosition(decls []css.Decl) bool {
	for _, d := range decls {
		if d.Property == "position" {
			return true
		}
	}
	return false
}
