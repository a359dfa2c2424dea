package stitch

// Tree modifier: pure, structural rewrites over an Element. Every operation
// returns a new tree and leaves its input untouched; attribute slices are
// copied before surgery so callers can keep sharing the original.

// SetNode replaces the markup tag of an element, preserving all other
// fields. For a Layout it changes only the drawing tag, never the layout
// kind. Leaves without a tag are returned unchanged.
func SetNode(tag string, el Element) Element {
	switch t := el.(type) {
	case Node:
		t.Tag = tag
		return t
	case Layout:
		t.Tag = tag
		return t
	default:
		return el
	}
}

// AddAttr appends one attribute to an element's attribute list. Leaves that
// cannot carry attributes are returned unchanged.
func AddAttr(a Attribute, el Element) Element {
	return AddAttrs([]Attribute{a}, el)
}

// AddAttrs appends attributes, preserving existing order.
func AddAttrs(attrs []Attribute, el Element) Element {
	if len(attrs) == 0 {
		return el
	}
	switch t := el.(type) {
	case Node:
		t.Attrs = appendAttrs(t.Attrs, attrs)
		return t
	case Layout:
		t.Attrs = appendAttrs(t.Attrs, attrs)
		return t
	default:
		return el
	}
}

// RemoveAttrs drops every attribute for which drop returns true, preserving
// the order of the remaining attributes.
func RemoveAttrs(drop func(Attribute) bool, el Element) Element {
	switch t := el.(type) {
	case Node:
		t.Attrs = filterAttrs(t.Attrs, drop)
		return t
	case Layout:
		t.Attrs = filterAttrs(t.Attrs, drop)
		return t
	default:
		return el
	}
}

// RemoveAllAttrs drops the entire attribute list.
func RemoveAllAttrs(el Element) Element {
	switch t := el.(type) {
	case Node:
		t.Attrs = nil
		return t
	case Layout:
		t.Attrs = nil
		return t
	default:
		return el
	}
}

// GetStyle returns the element's style identifier, or NoStyle for leaves.
func GetStyle(el Element) StyleID {
	switch t := el.(type) {
	case Node:
		return t.Style
	case Layout:
		return t.Style
	default:
		return NoStyle
	}
}

// GetAttrs returns the element's attribute list. The returned slice is
// shared with the element; callers must not mutate it.
func GetAttrs(el Element) []Attribute {
	switch t := el.(type) {
	case Node:
		return t.Attrs
	case Layout:
		return t.Attrs
	default:
		return nil
	}
}

// GetChild returns a Node's primary child. For every other variant it
// returns Empty; multi-child containers have no single child to destructure.
func GetChild(el Element) Element {
	if n, ok := el.(Node); ok {
		return n.Child
	}
	return Empty{}
}

// AddNearby appends extra to the element's secondary child list, creating
// the list if absent. Elements without a secondary list are first wrapped in
// a plain unstyled Node so the list has somewhere to live.
func AddNearby(extra Element, el Element) Element {
	if n, ok := el.(Node); ok {
		nearby := make([]Element, 0, len(n.Nearby)+1)
		nearby = append(nearby, n.Nearby...)
		n.Nearby = append(nearby, extra)
		return n
	}
	return Node{
		Tag:    "div",
		Child:  el,
		Nearby: []Element{extra},
	}
}

// AddAttrToNonText applies an attribute to any element except a bare Text
// leaf. Naked text is first wrapped in a plain unstyled Node because inline
// styling cannot attach to a bare text leaf; the original content is kept
// unchanged as the wrapper's child.
func AddAttrToNonText(a Attribute, el Element) Element {
	switch el.(type) {
	case Text:
		return Node{
			Tag:   "div",
			Attrs: []Attribute{a},
			Child: el,
		}
	case Empty, Raw, Spacer:
		return el
	default:
		return AddAttr(a, el)
	}
}

func appendAttrs(existing, extra []Attribute) []Attribute {
	out := make([]Attribute, 0, len(existing)+len(extra))
	out = append(out, existing...)
	return append(out, extra...)
}

func filterAttrs(attrs []Attribute, drop func(Attribute) bool) []Attribute {
	var out []Attribute
	for _, a := range attrs {
		if !drop(a) {
			out = append(out, a)
		}
	}
	return out
}
