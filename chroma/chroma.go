// Package chroma implements the tagged color model behind scheme generation:
// twelve canonical hue anchors, a squared-distance metric in RGB space and the
// HSL adjustments applied to accent colors.
package chroma

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// PureColor identifies one of the twelve canonical hue anchors that image
// colors are matched against.
type PureColor int

const (
	Red PureColor = iota
	Yellow
	Orange
	Green
	Cyan
	Blue
	Purple
	Brown
	Magenta
	Azure
	SpringGreen
	LightCyan
)

// PureColors lists every anchor in scan order. The first eight are the accent
// hues of a scheme; the remaining four exist as inverses of other anchors.
var PureColors = [...]PureColor{
	Red,
	Yellow,
	Orange,
	Green,
	Cyan,
	Blue,
	Purple,
	Brown,
	Magenta,
	Azure,
	SpringGreen,
	LightCyan,
}

var canonicalRGB = [...]RGB{
	Red:         {255, 0, 0},
	Yellow:      {255, 255, 0},
	Orange:      {255, 165, 0},
	Green:       {0, 255, 0},
	Cyan:        {0, 255, 255},
	Blue:        {0, 0, 255},
	Purple:      {128, 0, 128},
	Brown:       {165, 42, 42},
	Magenta:     {255, 0, 255},
	Azure:       {0, 90, 255},
	SpringGreen: {127, 255, 127},
	LightCyan:   {90, 213, 213},
}

// Each anchor's inverse is the anchor whose canonical value is its exact
// channel-wise 255-complement, which makes the mapping involutive.
var inverseOf = [...]PureColor{
	Red:         Cyan,
	Yellow:      Blue,
	Orange:      Azure,
	Green:       Magenta,
	Cyan:        Red,
	Blue:        Yellow,
	Purple:      SpringGreen,
	Brown:       LightCyan,
	Magenta:     Green,
	Azure:       Orange,
	SpringGreen: Purple,
	LightCyan:   Brown,
}

var pureColorNames = [...]string{
	Red:         "red",
	Yellow:      "yellow",
	Orange:      "orange",
	Green:       "green",
	Cyan:        "cyan",
	Blue:        "blue",
	Purple:      "purple",
	Brown:       "brown",
	Magenta:     "magenta",
	Azure:       "azure",
	SpringGreen: "spring_green",
	LightCyan:   "light_cyan",
}

// RGB returns the anchor's canonical color value.
func (p PureColor) RGB() RGB {
	return canonicalRGB[p]
}

// Inverse returns the anchor paired with p.
func (p PureColor) Inverse() PureColor {
	return inverseOf[p]
}

func (p PureColor) String() string {
	return pureColorNames[p]
}

// RGB is a color value with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Distance returns the squared Euclidean distance between two RGB values,
// channels widened before multiplying. It is commutative and zero only for
// identical values.
func Distance(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)

	return dr*dr + dg*dg + db*db
}

// Hex encodes the value as six uppercase hex digits in R,G,B channel order.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// Invert returns the channel-wise 255-complement.
func (c RGB) Invert() RGB {
	return RGB{255 - c.R, 255 - c.G, 255 - c.B}
}

// Colorful converts the value to its floating-point representation.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful converts a floating-point color back to 8-bit channels,
// clamping out-of-gamut components and rounding.
func FromColorful(col colorful.Color) RGB {
	r, g, b := col.Clamped().RGB255()

	return RGB{r, g, b}
}
