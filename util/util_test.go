package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestSlugify(t *testing.T) {
	Convey("Slugify", t, func() {
		Convey("Should lowercase and hyphenate", func() {
			So(Slugify("Crimson Field"), ShouldEqual, "crimson-field")
		})
		Convey("Should collapse symbol runs", func() {
			So(Slugify("Dusk -- at _the_ Pier!"), ShouldEqual, "dusk-at-the-pier")
		})
		Convey("Should trim leading and trailing hyphens", func() {
			So(Slugify("  edge  "), ShouldEqual, "edge")
		})
		Convey("Should pass clean slugs through", func() {
			So(Slugify("already-a-slug"), ShouldEqual, "already-a-slug")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "scheme", "schemes"), ShouldEqual, "1 scheme")
		So(Quantify(2, "scheme", "schemes"), ShouldEqual, "2 schemes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.png"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}
