package stitch

// Form helpers compose semantic HTML form idioms out of the primitive tree.
// They partition the caller's attributes into {input-event, other}: input
// events always travel with the generated input node, never with the label
// wrapper.

// Option builds a select or radio option carrying a value and a label
// payload. Radio destructures options back into their parts.
func Option(value string, style StyleID, attrs []Attribute, label Element) Element {
	attrs = appendAttrs(attrs, []Attribute{HTMLAttr("value", value)})
	return Node{Tag: "option", Style: style, Attrs: attrs, Child: label}
}

// Label renders label text above an input.
func Label(style StyleID, attrs []Attribute, text Element, input Element) Element {
	events, rest := partitionEvents(attrs)
	return Layout{
		Tag:   "label",
		Kind:  FlexLayout{Direction: Downward},
		Style: style,
		Attrs: rest,
		Children: Unkeyed(
			AddAttrToNonText(inline(), text),
			AddAttrs(events, input),
		),
	}
}

// LabelBelow renders label text under an input.
func LabelBelow(style StyleID, attrs []Attribute, text Element, input Element) Element {
	events, rest := partitionEvents(attrs)
	return Layout{
		Tag:   "label",
		Kind:  FlexLayout{Direction: Downward},
		Style: style,
		Attrs: rest,
		Children: Unkeyed(
			AddAttrs(events, input),
			AddAttrToNonText(inline(), text),
		),
	}
}

// Checkbox renders a labeled checkbox.
func Checkbox(style StyleID, attrs []Attribute, label Element, checked bool) Element {
	events, rest := partitionEvents(attrs)
	inputAttrs := appendAttrs(events, []Attribute{HTMLAttr("type", "checkbox")})
	if checked {
		inputAttrs = append(inputAttrs, HTMLAttr("checked", "checked"))
	}
	input := Node{Tag: "input", Attrs: inputAttrs, Child: Empty{}}
	return Layout{
		Tag:      "label",
		Kind:     FlexLayout{Direction: Rightward},
		Style:    style,
		Attrs:    rest,
		Children: Unkeyed(input, AddAttrToNonText(inline(), label)),
	}
}

// Radio renders a group of labeled radio inputs sharing one name. Each
// option is pulled apart with the tree modifier accessors: its style moves
// to the generated label wrapper, its attributes (including the value) move
// to the generated input, and its payload becomes the visible label.
func Radio(style StyleID, attrs []Attribute, name string, options ...Element) Element {
	events, rest := partitionEvents(attrs)
	rows := make([]Element, 0, len(options))
	for _, opt := range options {
		inputAttrs := appendAttrs(events, []Attribute{
			HTMLAttr("type", "radio"),
			HTMLAttr("name", name),
		})
		inputAttrs = appendAttrs(inputAttrs, GetAttrs(opt))
		input := Node{Tag: "input", Attrs: inputAttrs, Child: Empty{}}
		rows = append(rows, Layout{
			Tag:      "label",
			Kind:     FlexLayout{Direction: Rightward},
			Style:    GetStyle(opt),
			Children: Unkeyed(input, AddAttrToNonText(inline(), GetChild(opt))),
		})
	}
	return Layout{
		Tag:      "div",
		Kind:     FlexLayout{Direction: Downward},
		Style:    style,
		Attrs:    rest,
		Children: Unkeyed(rows...),
	}
}

// Select renders a labeled dropdown. Events attach to the select node.
func Select(style StyleID, attrs []Attribute, label Element, options ...Element) Element {
	events, rest := partitionEvents(attrs)
	sel := Layout{
		Tag:      "select",
		Kind:     TextFlow{},
		Attrs:    events,
		Children: Unkeyed(options...),
	}
	return Layout{
		Tag:      "label",
		Kind:     FlexLayout{Direction: Downward},
		Style:    style,
		Attrs:    rest,
		Children: Unkeyed(AddAttrToNonText(inline(), label), sel),
	}
}
