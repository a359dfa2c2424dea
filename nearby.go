package stitch

// Nearby positioning attaches elements outside normal flow relative to a
// parent. Each helper left-folds over the supplied elements: left-to-right
// application order determines the secondary-child order and thus visual
// stacking. Every nearby element is tagged with a positioning frame and
// stripped of alignment attributes on the axis the direction occupies.

// Above attaches elements over the parent's top edge.
func Above(parent Element, els ...Element) Element {
	return nearby(NearbyAbove, parent, els)
}

// Below attaches elements under the parent's bottom edge.
func Below(parent Element, els ...Element) Element {
	return nearby(NearbyBelow, parent, els)
}

// OnLeft attaches elements to the left of the parent.
func OnLeft(parent Element, els ...Element) Element {
	return nearby(NearbyOnLeft, parent, els)
}

// OnRight attaches elements to the right of the parent.
func OnRight(parent Element, els ...Element) Element {
	return nearby(NearbyOnRight, parent, els)
}

// Within overlays elements on top of the parent.
func Within(parent Element, els ...Element) Element {
	return nearby(NearbyWithin, parent, els)
}

// Screen fixes elements to the viewport rather than to the parent.
func Screen(parent Element, els ...Element) Element {
	out := parent
	for _, el := range els {
		out = AddNearby(AddAttr(frameAttr{pos: FrameScreen}, framed(el)), out)
	}
	return positioned(out)
}

func nearby(dir NearbyDirection, parent Element, els []Element) Element {
	out := parent
	for _, el := range els {
		el = RemoveAttrs(conflictsWith(dir), framed(el))
		el = AddAttr(frameAttr{pos: FrameNearby, dir: dir}, el)
		out = AddNearby(el, out)
	}
	return positioned(out)
}

// framed ensures an element can carry the positioning frame attribute. Bare
// leaves cannot, so they are wrapped in a plain unstyled node first.
func framed(el Element) Element {
	switch el.(type) {
	case Text, Raw, Spacer:
		return Node{Tag: "div", Child: el}
	default:
		return el
	}
}

// conflictsWith drops alignment on the axis the nearby direction occupies:
// vertical for above/below, horizontal for left/right.
func conflictsWith(dir NearbyDirection) func(Attribute) bool {
	return func(a Attribute) bool {
		switch dir {
		case NearbyAbove, NearbyBelow:
			_, ok := a.(alignYAttr)
			return ok
		case NearbyOnLeft, NearbyOnRight:
			_, ok := a.(alignXAttr)
			return ok
		default:
			return false
		}
	}
}

// positioned marks the parent as the anchor its nearby children resolve
// against, once.
func positioned(el Element) Element {
	for _, a := range GetAttrs(el) {
		if f, ok := a.(frameAttr); ok && f.pos == FramePositioned {
			return el
		}
	}
	return AddAttr(frameAttr{pos: FramePositioned}, el)
}
