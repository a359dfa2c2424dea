package stitch

// Length is the sealed sum of dimension values carried by sizing attributes
// and grid templates.
type Length interface {
	length()
}

type pxLength struct{ n int }

type percentLength struct{ p float64 }

type fillLength struct{ portion int }

type contentLength struct{}

type minLength struct {
	floor int
	inner Length
}

type maxLength struct {
	ceil  int
	inner Length
}

func (pxLength) length()      {}
func (percentLength) length() {}
func (fillLength) length()    {}
func (contentLength) length() {}
func (minLength) length()     {}
func (maxLength) length()     {}

// Px returns a Length in absolute pixels.
func Px(n int) Length {
	return pxLength{n: n}
}

// Percent returns a Length as a percentage of the parent's available space,
// on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Length {
	return percentLength{p: p}
}

// Fill returns a Length that grows to take a portion of the leftover space
// relative to sibling fills.
func Fill(portion int) Length {
	return fillLength{portion: portion}
}

// Content returns a Length sized to the element's content.
func Content() Length {
	return contentLength{}
}

// Min clamps a Length to a lower bound in pixels.
func Min(floor int, l Length) Length {
	return minLength{floor: floor, inner: l}
}

// Max clamps a Length to an upper bound in pixels.
func Max(ceil int, l Length) Length {
	return maxLength{ceil: ceil, inner: l}
}
