package palette

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/tinge-cli/tinge/chroma"
)

func TestCurateInverse(t *testing.T) {
	Convey("CurateInverse", t, func() {
		Convey("Should substitute the inverted counterpart for close matches", func() {
			scanned := Scan(redGreenImage(), 1)
			curated := CurateInverse(scanned)

			// The direct red match is perfect, which is below the trust
			// threshold, so the slot takes the inverted cyan match instead.
			red, _ := curated.Get(chroma.Red)
			cyanMatch, _ := scanned.Get(chroma.Cyan)
			So(red.Value, ShouldResemble, cyanMatch.Value.Invert())
			So(red.Value, ShouldResemble, chroma.RGB{R: 255, B: 255})
		})

		Convey("Should keep a distant direct match that beats its counterpart", func() {
			direct := chroma.New(chroma.Red, chroma.RGB{100, 100, 100})
			counterpart := chroma.New(chroma.Cyan, chroma.RGB{10, 10, 10})
			So(direct.Distance, ShouldBeGreaterThan, MaxColorDistance)
			So(direct.Distance, ShouldBeLessThan, counterpart.Inverse().Distance)

			curated := CurateInverse(Palette{direct, counterpart})

			red, _ := curated.Get(chroma.Red)
			So(red, ShouldResemble, direct)
		})

		Convey("Should substitute when the counterpart is closer", func() {
			// Distant direct match, but the inverted counterpart is closer
			// to the anchor than the direct match is.
			direct := chroma.New(chroma.Red, chroma.RGB{100, 100, 100})
			counterpart := chroma.New(chroma.Cyan, chroma.RGB{5, 250, 250})

			curated := CurateInverse(Palette{direct, counterpart})

			red, _ := curated.Get(chroma.Red)
			So(red, ShouldResemble, counterpart.Inverse())
			So(red.Value, ShouldResemble, chroma.RGB{250, 5, 5})
		})

		Convey("Should keep entries without a scanned counterpart", func() {
			direct := chroma.New(chroma.Red, chroma.RGB{200, 0, 0})

			curated := CurateInverse(Palette{direct})

			So(curated, ShouldResemble, Palette{direct})
		})
	})
}

func TestCurateDominant(t *testing.T) {
	anchors := func() Palette {
		scanned := make(Palette, 0, len(chroma.PureColors))
		for _, pure := range chroma.PureColors {
			scanned = append(scanned, chroma.From(pure))
		}
		return scanned
	}

	Convey("CurateDominant", t, func() {
		Convey("Should refuse an empty dominant list", func() {
			_, err := CurateDominant(anchors(), nil)
			So(err, ShouldEqual, ErrNoDominantColors)
		})

		Convey("Should let a close dominant color claim its anchor", func() {
			curated, err := CurateDominant(anchors(), []chroma.RGB{{250, 10, 10}})
			So(err, ShouldBeNil)

			red, _ := curated.Get(chroma.Red)
			So(red.Value, ShouldResemble, chroma.RGB{250, 10, 10})
			So(red.Distance, ShouldEqual, 225)

			// Everything else falls back to the input entry.
			green, _ := curated.Get(chroma.Green)
			So(green, ShouldResemble, chroma.From(chroma.Green))
		})

		Convey("Should assign each dominant color to its single closest anchor", func() {
			// Closer to orange than to yellow; yellow must stay untouched.
			curated, err := CurateDominant(anchors(), []chroma.RGB{{255, 200, 0}})
			So(err, ShouldBeNil)

			orange, _ := curated.Get(chroma.Orange)
			So(orange.Value, ShouldResemble, chroma.RGB{255, 200, 0})

			yellow, _ := curated.Get(chroma.Yellow)
			So(yellow, ShouldResemble, chroma.From(chroma.Yellow))
		})

		Convey("Should displace a claim only when strictly closer", func() {
			further := chroma.RGB{240, 0, 0}
			closer := chroma.RGB{250, 0, 0}

			curated, _ := CurateDominant(anchors(), []chroma.RGB{further, closer})
			red, _ := curated.Get(chroma.Red)
			So(red.Value, ShouldResemble, closer)

			// Equal distance keeps the earlier dominant color.
			first := chroma.RGB{245, 0, 0}
			second := chroma.RGB{255, 10, 0}
			So(chroma.New(chroma.Red, first).Distance, ShouldEqual, chroma.New(chroma.Red, second).Distance)

			curated, _ = CurateDominant(anchors(), []chroma.RGB{first, second})
			red, _ = curated.Get(chroma.Red)
			So(red.Value, ShouldResemble, first)
		})

		Convey("Should fall back for dominant colors far from every anchor", func() {
			grey := chroma.RGB{128, 128, 128}

			curated, err := CurateDominant(anchors(), []chroma.RGB{grey})
			So(err, ShouldBeNil)
			So(curated, ShouldResemble, anchors())
		})

		Convey("Should be idempotent for the same dominant set", func() {
			dominant := []chroma.RGB{{255, 0, 0}, {0, 255, 0}, {30, 40, 50}}
			scanned := Scan(redGreenImage(), 1)

			once, err := CurateDominant(CurateInverse(scanned), dominant)
			So(err, ShouldBeNil)
			twice, err := CurateDominant(once, dominant)
			So(err, ShouldBeNil)

			So(twice, ShouldResemble, once)
		})

		Convey("Should restore exact entries for a red/green image", func() {
			scanned := Scan(redGreenImage(), 1)
			curated, err := CurateDominant(CurateInverse(scanned), []chroma.RGB{{255, 0, 0}, {0, 255, 0}})
			So(err, ShouldBeNil)

			red, _ := curated.Get(chroma.Red)
			So(red.Distance, ShouldEqual, 0)
			green, _ := curated.Get(chroma.Green)
			So(green.Distance, ShouldEqual, 0)
		})
	})
}
