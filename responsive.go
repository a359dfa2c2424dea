package stitch

import "github.com/tanema/gween/ease"

// Device is a viewport classification. The four breakpoint booleans are
// mutually exclusive by construction since the thresholds partition the
// width range.
type Device struct {
	Width      int
	Height     int
	Phone      bool
	Tablet     bool
	Desktop    bool
	BigDesktop bool
	// Portrait is width > height. This is inverted from the conventional
	// meaning; the behavior is authoritative and kept literally.
	Portrait bool
}

// ClassifyDevice maps viewport dimensions to a device profile:
// phone up to 600, tablet up to 1200, desktop up to 1800, big desktop above.
func ClassifyDevice(width, height int) Device {
	return Device{
		Width:      width,
		Height:     height,
		Phone:      width <= 600,
		Tablet:     width > 600 && width <= 1200,
		Desktop:    width > 1200 && width <= 1800,
		BigDesktop: width > 1800,
		Portrait:   width > height,
	}
}

// Range is a closed numeric interval.
type Range struct {
	Min float64
	Max float64
}

// Responsive maps value from the input range onto the output range,
// clamping outside the input domain and interpolating linearly inside it.
// A zero-width input range is a caller error: the interpolation divides by
// the range width and propagates the resulting non-finite values.
func Responsive(value float64, input, output Range) float64 {
	if value < input.Min {
		return output.Min
	}
	if value > input.Max {
		return output.Max
	}
	return float64(ease.Linear(
		float32(value-input.Min),
		float32(output.Min),
		float32(output.Max-output.Min),
		float32(input.Max-input.Min),
	))
}
