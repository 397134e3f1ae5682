package quantize

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinge-cli/tinge/chroma"
)

func rgbaPixels(colors ...[4]byte) []byte {
	pix := make([]byte, 0, len(colors)*4)
	for _, c := range colors {
		pix = append(pix, c[0], c[1], c[2], c[3])
	}
	return pix
}

func repeat(color [4]byte, count int) [][4]byte {
	out := make([][4]byte, count)
	for i := range out {
		out[i] = color
	}
	return out
}

func TestQuantize(t *testing.T) {
	red := [4]byte{255, 0, 0, 255}
	green := [4]byte{0, 255, 0, 255}
	blue := [4]byte{0, 0, 255, 255}

	Convey("Quantize", t, func() {
		Convey("Should return the exact color of a uniform input", func() {
			pix := rgbaPixels(repeat(red, 16)...)

			colors, err := Quantize(pix, RGBA, Options{})
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []chroma.RGB{{R: 255}})
		})

		Convey("Should return both exact colors of a two-color input", func() {
			pix := rgbaPixels(append(repeat(red, 8), repeat(green, 8)...)...)

			colors, err := Quantize(pix, RGBA, Options{})
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 2)
			So(colors, ShouldContain, chroma.RGB{R: 255})
			So(colors, ShouldContain, chroma.RGB{G: 255})
		})

		Convey("Should order colors by population", func() {
			pix := rgbaPixels(append(repeat(blue, 12), repeat(red, 4)...)...)

			colors, err := Quantize(pix, RGBA, Options{})
			So(err, ShouldBeNil)
			So(colors[0], ShouldResemble, chroma.RGB{B: 255})
		})

		Convey("Should be deterministic", func() {
			pix := make([]byte, 0, 256*4)
			for i := 0; i < 256; i++ {
				pix = append(pix, byte(i), byte(255-i), byte(i/2), 255)
			}

			first, err := Quantize(pix, RGBA, Options{MaxColors: 6})
			So(err, ShouldBeNil)
			second, err := Quantize(pix, RGBA, Options{MaxColors: 6})
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
		})

		Convey("Should cap the palette at MaxColors", func() {
			pix := make([]byte, 0, 64*4)
			for i := 0; i < 64; i++ {
				pix = append(pix, byte(i*4), byte(255-i*4), byte(i*2), 255)
			}

			colors, err := Quantize(pix, RGBA, Options{MaxColors: 4})
			So(err, ShouldBeNil)
			So(len(colors), ShouldBeLessThanOrEqualTo, 4)
			So(len(colors), ShouldBeGreaterThan, 1)
		})

		Convey("Should sample at the quality stride", func() {
			pix := rgbaPixels(red, blue, red, blue)

			colors, err := Quantize(pix, RGBA, Options{Quality: 2})
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []chroma.RGB{{R: 255}})
		})

		Convey("Should skip transparent samples", func() {
			transparentGreen := [4]byte{0, 255, 0, 10}
			pix := rgbaPixels(red, transparentGreen, transparentGreen, transparentGreen)

			colors, err := Quantize(pix, RGBA, Options{})
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []chroma.RGB{{R: 255}})
		})

		Convey("Should skip near-white samples", func() {
			white := [4]byte{255, 255, 255, 255}
			pix := rgbaPixels(white, red, white, white)

			colors, err := Quantize(pix, RGBA, Options{})
			So(err, ShouldBeNil)
			So(colors, ShouldResemble, []chroma.RGB{{R: 255}})
		})

		Convey("Should report when nothing survives filtering", func() {
			white := [4]byte{255, 255, 255, 255}

			_, err := Quantize(rgbaPixels(white, white), RGBA, Options{})
			So(err, ShouldEqual, ErrNoPixels)

			_, err = Quantize(nil, RGBA, Options{})
			So(err, ShouldEqual, ErrNoPixels)
		})

		Convey("Should accept packed RGB input", func() {
			pix := []byte{255, 0, 0, 255, 0, 0, 0, 255, 0}

			colors, err := Quantize(pix, RGB, Options{})
			So(err, ShouldBeNil)
			So(colors, ShouldHaveLength, 2)
			So(colors[0], ShouldResemble, chroma.RGB{R: 255})
		})

		Convey("Should reject an unknown pixel format", func() {
			_, err := Quantize(rgbaPixels(red), PixelFormat(9), Options{})
			So(err, ShouldNotBeNil)
		})
	})
}
