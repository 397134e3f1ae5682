package palette

import (
	"image"
	"image/color"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinge-cli/tinge/chroma"
)

func fillRect(img *image.NRGBA, rect image.Rectangle, c color.NRGBA) {
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func redGreenImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	fillRect(img, image.Rect(0, 0, 8, 4), color.NRGBA{R: 255, A: 255})
	fillRect(img, image.Rect(0, 4, 8, 8), color.NRGBA{G: 255, A: 255})
	return img
}

func TestScan(t *testing.T) {
	Convey("Scan", t, func() {
		Convey("Should find exact anchors in a red/green image", func() {
			scanned := Scan(redGreenImage(), 1)
			So(scanned, ShouldHaveLength, 12)

			red, ok := scanned.Get(chroma.Red)
			So(ok, ShouldBeTrue)
			So(red.Value, ShouldResemble, chroma.RGB{R: 255})
			So(red.Distance, ShouldEqual, 0)

			green, ok := scanned.Get(chroma.Green)
			So(ok, ShouldBeTrue)
			So(green.Value, ShouldResemble, chroma.RGB{G: 255})
			So(green.Distance, ShouldEqual, 0)
		})

		Convey("Should pick the nearest pixel for anchors absent from the image", func() {
			scanned := Scan(redGreenImage(), 1)

			cyan, _ := scanned.Get(chroma.Cyan)
			So(cyan.Value, ShouldResemble, chroma.RGB{G: 255})
			So(cyan.Distance, ShouldEqual, 65025)
		})

		Convey("Should resolve ties to the first pixel in scan order", func() {
			img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
			// Both are at distance 1 from pure red.
			img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 1, A: 255})
			img.SetNRGBA(1, 0, color.NRGBA{R: 254, A: 255})

			red, _ := Scan(img, 1).Get(chroma.Red)
			So(red.Value, ShouldResemble, chroma.RGB{R: 255, G: 1})
			So(red.Distance, ShouldEqual, 1)
		})

		Convey("Parallel scan should match the sequential scan", func() {
			img := image.NewNRGBA(image.Rect(0, 0, 13, 11))
			for y := 0; y < 11; y++ {
				for x := 0; x < 13; x++ {
					img.SetNRGBA(x, y, color.NRGBA{
						R: uint8(x * 19),
						G: uint8(y * 23),
						B: uint8((x + y) * 7),
						A: 255,
					})
				}
			}

			So(Scan(img, 4), ShouldResemble, Scan(img, 1))
			So(Scan(img, 8), ShouldResemble, Scan(img, 1))
		})

		Convey("Empty image should yield the canonical anchors", func() {
			scanned := Scan(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 0)
			So(scanned, ShouldHaveLength, 12)
			for _, entry := range scanned {
				So(entry.Value, ShouldResemble, entry.Pure.RGB())
				So(entry.Distance, ShouldEqual, 0)
			}
		})

		Convey("Should ignore alpha", func() {
			img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
			img.SetNRGBA(0, 0, color.NRGBA{R: 255})

			red, _ := Scan(img, 1).Get(chroma.Red)
			So(red.Distance, ShouldEqual, 0)
		})
	})
}
