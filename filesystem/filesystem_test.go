package filesystem

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})

		Convey("MemMapFs should start empty on every switch", func() {
			SetMemMapFs()
			So(API().WriteFile("/icons/base/files/go.svg", []byte("<svg/>"), 0o644), ShouldBeNil)
			SetMemMapFs()
			exists, err := API().Exists("/icons/base/files/go.svg")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})
	})
}

func TestReadOnly(t *testing.T) {
	Convey("Given a read-only backend", t, func() {
		SetMemMapFs()
		So(API().WriteFile("/kept.svg", []byte("<svg/>"), 0o644), ShouldBeNil)
		SetReadOnlyFs()
		Reset(SetMemMapFs)

		Convey("Existing files stay readable", func() {
			data, err := API().ReadFile("/kept.svg")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "<svg/>")
		})

		Convey("Writes fail", func() {
			So(API().WriteFile("/new.svg", []byte("<svg/>"), 0o644), ShouldNotBeNil)
		})
	})
}
