package contrast

import (
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

func grey(v float64) colorful.Color {
	return colorful.Color{R: v, G: v, B: v}
}

func TestSatLuma(t *testing.T) {
	Convey("satLuma", t, func() {
		Convey("Pure green is fully saturated and bright", func() {
			s, l := satLuma(colorful.Color{G: 1})
			So(s, ShouldAlmostEqual, 1, 0.0001)
			So(l, ShouldAlmostEqual, 0.7152, 0.001)
		})
		Convey("Grey has no saturation", func() {
			s, _ := satLuma(grey(0.5))
			So(s, ShouldEqual, 0)
		})
	})
}

func TestLight(t *testing.T) {
	Convey("Light", t, func() {
		Convey("Should fail on an empty candidate list", func() {
			_, err := Light(nil)
			So(err, ShouldEqual, ErrNoCandidates)
		})

		Convey("Should pick a bright unsaturated candidate on the first pass", func() {
			dark := grey(0.1)
			bright := grey(0.9)

			found, err := Light([]colorful.Color{dark, bright})
			So(err, ShouldBeNil)
			So(found, ShouldResemble, bright)
		})

		Convey("Should cascade to permissive passes for saturated candidates", func() {
			red := colorful.Color{R: 1}
			green := colorful.Color{G: 1}

			// Green is fully saturated, so only the any-saturation pass
			// accepts it; red is too dark for every bounded pass.
			found, err := Light([]colorful.Color{red, green})
			So(err, ShouldBeNil)
			So(found, ShouldResemble, green)
		})

		Convey("Should fall back to the most dominant candidate", func() {
			red := colorful.Color{R: 1}
			darker := colorful.Color{R: 0.3}

			found, err := Light([]colorful.Color{red, darker})
			So(err, ShouldBeNil)
			So(found, ShouldResemble, red)
		})
	})
}

func TestDark(t *testing.T) {
	Convey("Dark", t, func() {
		Convey("Should fail on an empty candidate list", func() {
			_, err := Dark(nil)
			So(err, ShouldEqual, ErrNoCandidates)
		})

		Convey("Should pick a dark slightly saturated candidate on the first pass", func() {
			bright := grey(0.9)
			darkBlue := colorful.Hsl(240, 0.5, 0.2)

			found, err := Dark([]colorful.Color{bright, darkBlue})
			So(err, ShouldBeNil)
			So(found, ShouldResemble, darkBlue)
		})

		Convey("Should accept very dark candidates on a later pass", func() {
			nearBlack := grey(0.05)

			found, err := Dark([]colorful.Color{grey(0.9), nearBlack})
			So(err, ShouldBeNil)
			So(found, ShouldResemble, nearBlack)
		})

		Convey("Should fall back to the most dominant candidate", func() {
			green := colorful.Color{G: 1}
			red := colorful.Color{R: 1}

			found, err := Dark([]colorful.Color{green, red})
			So(err, ShouldBeNil)
			So(found, ShouldResemble, green)
		})
	})
}

func TestFixDark(t *testing.T) {
	Convey("FixDark", t, func() {
		Convey("Valid anchors pass through untouched", func() {
			dark := grey(0.1)  // luma ~0.01
			light := grey(0.9) // luma ~0.79

			bg, fg := FixDark(dark, light)
			So(bg, ShouldResemble, dark)
			So(fg, ShouldResemble, light)
		})

		Convey("Dim foreground is pushed to the luma floor", func() {
			bg, fg := FixDark(grey(0.1), grey(0.5))

			_, luma := satLuma(fg)
			So(luma, ShouldAlmostEqual, 0.6, 0.0001)
			So(bg, ShouldResemble, grey(0.1))
		})

		Convey("Saturated foreground is pushed to the saturation ceiling", func() {
			light := colorful.Hsl(30, 0.8, 0.7)

			_, fg := FixDark(grey(0.1), light)

			s, _ := satLuma(fg)
			So(s, ShouldAlmostEqual, 0.15, 0.0001)
		})

		Convey("Bright background is pushed to the luma ceiling", func() {
			bg, _ := FixDark(grey(0.5), grey(0.9))

			_, luma := satLuma(bg)
			So(luma, ShouldAlmostEqual, 0.02, 0.0001)
		})
	})
}

func TestFixLight(t *testing.T) {
	Convey("FixLight", t, func() {
		Convey("Anchors swap roles", func() {
			dark := grey(0.05) // luma ~0.005, below the fg ceiling
			light := grey(0.95)

			bg, fg := FixLight(dark, light)

			_, fgLuma := satLuma(fg)
			So(fgLuma, ShouldBeLessThan, 0.016)
			_, bgLuma := satLuma(bg)
			So(bgLuma, ShouldBeGreaterThan, 0.74)
		})

		Convey("Background saturation above 0.12 is pushed to 0.15", func() {
			light := colorful.Hsl(120, 0.13, 0.8)

			bg, _ := FixLight(grey(0.05), light)

			s, _ := satLuma(bg)
			So(s, ShouldAlmostEqual, 0.15, 0.001)
		})

		Convey("Dark foreground above the luma ceiling is pushed down", func() {
			_, fg := FixLight(grey(0.3), grey(0.9))

			_, luma := satLuma(fg)
			So(luma, ShouldAlmostEqual, 0.015, 0.0001)
		})
	})
}
