package chroma

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB value tagged with the hue anchor it was matched against.
// Distance is always the squared distance between Value and the anchor's
// canonical color, recomputed by every transform.
type Color struct {
	Pure     PureColor
	Value    RGB
	Distance int
}

// New tags value with the given anchor and records its distance to it.
func New(pure PureColor, value RGB) Color {
	return Color{
		Pure:     pure,
		Value:    value,
		Distance: Distance(pure.RGB(), value),
	}
}

// From returns the anchor's own canonical color, at distance zero.
func From(pure PureColor) Color {
	return Color{Pure: pure, Value: pure.RGB()}
}

// Inverse complements the value channel-wise and re-tags it with the inverse
// anchor. The canonical anchors are exact complements of their inverses, so
// inverting a canonical color lands on another canonical color.
func (c Color) Inverse() Color {
	return New(c.Pure.Inverse(), c.Value.Invert())
}

// Hex encodes the color value as six uppercase hex digits.
func (c Color) Hex() string {
	return c.Value.Hex()
}

// Saturate multiplies the HSL saturation by amount squared, clamping amount
// to [0,1] first. The quadratic easing makes low amounts dampen harder.
func (c Color) Saturate(amount float64) Color {
	amount = clamp01(amount)

	h, s, l := c.Value.Colorful().Hsl()

	return New(c.Pure, FromColorful(colorful.Hsl(h, s*amount*amount, l)))
}

// AddLightness raises the HSL lightness by delta, clamping both delta and the
// resulting lightness to [0,1].
func (c Color) AddLightness(delta float64) Color {
	h, s, l := c.Value.Colorful().Hsl()
	l = clamp01(l + clamp01(delta))

	return New(c.Pure, FromColorful(colorful.Hsl(h, s, l)))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
