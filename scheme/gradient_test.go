package scheme

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinge-cli/tinge/chroma"
)

func TestInterpolate(t *testing.T) {
	Convey("Given two colors", t, func() {
		black := chroma.RGB{}
		white := chroma.RGB{R: 255, G: 255, B: 255}

		Convey("When interpolating at the endpoints", func() {
			Convey("Then the endpoints come back unchanged", func() {
				So(Interpolate(black, white, 0), ShouldResemble, black)
				So(Interpolate(black, white, 1), ShouldResemble, white)
			})
		})

		Convey("When interpolating midway", func() {
			mid := Interpolate(black, white, 0.5)

			Convey("Then channels truncate toward zero", func() {
				So(mid, ShouldResemble, chroma.RGB{R: 127, G: 127, B: 127})
			})
		})

		Convey("When the channels move in different directions", func() {
			start := chroma.RGB{R: 200, G: 0, B: 100}
			end := chroma.RGB{R: 0, G: 200, B: 100}
			mixed := Interpolate(start, end, 0.25)

			Convey("Then each channel interpolates independently", func() {
				So(mixed, ShouldResemble, chroma.RGB{R: 150, G: 50, B: 100})
			})
		})
	})
}

func TestGradient(t *testing.T) {
	Convey("Given a black to white ramp", t, func() {
		black := chroma.RGB{}
		white := chroma.RGB{R: 255, G: 255, B: 255}

		Convey("When generating eight steps", func() {
			gradient := Gradient(black, white, 8)

			Convey("Then the steps are evenly spaced and truncated", func() {
				greys := []uint8{0, 36, 72, 109, 145, 182, 218, 255}

				So(gradient, ShouldHaveLength, 8)
				for i, grey := range greys {
					So(gradient[i], ShouldResemble, chroma.RGB{R: grey, G: grey, B: grey})
				}
			})
		})

		Convey("When generating a reversed ramp", func() {
			gradient := Gradient(white, black, 8)

			Convey("Then it starts at the first endpoint", func() {
				So(gradient[0], ShouldResemble, white)
				So(gradient[7], ShouldResemble, black)
			})
		})
	})

	Convey("Given degenerate step counts", t, func() {
		red := chroma.RGB{R: 255}

		Convey("Then zero steps yield nothing", func() {
			So(Gradient(red, red, 0), ShouldBeNil)
		})

		Convey("Then a single step is the first endpoint", func() {
			So(Gradient(red, chroma.RGB{}, 1), ShouldResemble, []chroma.RGB{red})
		})
	})

	Convey("Given identical endpoints", t, func() {
		blue := chroma.RGB{B: 200}
		gradient := Gradient(blue, blue, 8)

		Convey("Then every step is that color", func() {
			for _, step := range gradient {
				So(step, ShouldResemble, blue)
			}
		})
	})
}
