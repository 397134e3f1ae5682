package contrast

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// FixDark arranges the anchors for a dark scheme: the light anchor becomes
// the foreground, the dark anchor the background, each pushed to the boundary
// of its validity box. Saturation and luminance are measured once per anchor
// before any push, so the saturation check keys off the original measurement
// even when the luminance push shifts it.
func FixDark(dark, light colorful.Color) (bg, fg colorful.Color) {
	bg, fg = dark, light

	// Foreground should be light: luma >= 0.6, saturation <= 0.15.
	saturation, luma := satLuma(light)
	if luma < 0.6 {
		fg = withLuma(fg, 0.6)
	}
	if saturation > 0.15 {
		fg = withSaturation(fg, 0.15)
	}

	// Background should be dark: luma <= 0.02, saturation <= 0.6.
	saturation, luma = satLuma(dark)
	if luma > 0.02 {
		bg = withLuma(bg, 0.02)
	}
	if saturation > 0.6 {
		bg = withSaturation(bg, 0.6)
	}

	return bg, fg
}

// FixLight arranges the anchors for a light scheme: the dark anchor becomes
// the foreground, the light anchor the background. The background saturation
// bound is checked against 0.12 but pushed to 0.15, an asymmetry kept as
// calibration.
func FixLight(dark, light colorful.Color) (bg, fg colorful.Color) {
	bg, fg = light, dark

	// Foreground should be pretty dark: luma <= 0.015, saturation <= 0.65.
	saturation, luma := satLuma(dark)
	if luma > 0.015 {
		fg = withLuma(fg, 0.015)
	}
	if saturation > 0.65 {
		fg = withSaturation(fg, 0.65)
	}

	// Background should be light: luma >= 0.75.
	saturation, luma = satLuma(light)
	if luma < 0.75 {
		bg = withLuma(bg, 0.75)
	}
	if saturation > 0.12 {
		bg = withSaturation(bg, 0.15)
	}

	return bg, fg
}

// withLuma replaces the Yxy luminance, keeping chromaticity.
func withLuma(c colorful.Color, luma float64) colorful.Color {
	x, y, _ := c.Xyy()
	return colorful.Xyy(x, y, luma)
}

// withSaturation replaces the HSL saturation, keeping hue and lightness.
func withSaturation(c colorful.Color, saturation float64) colorful.Color {
	h, _, l := c.Hsl()
	return colorful.Hsl(h, saturation, l)
}
