package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		v, err := Parse("v1.2.3")
		So(err, ShouldBeNil)
		So(v, ShouldResemble, Version{1, 2, 3})
		So(v.String(), ShouldEqual, "1.2.3")

		for _, bad := range []string{"", "1.2", "one.two.three", "1.2.3-beta", "1.-2.3"} {
			_, err := Parse(bad)
			So(err, ShouldNotBeNil)
		}
	})
}

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		for _, tc := range []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"1.0.1", "1.0.0", 1},
			{"1.2.0", "1.10.0", -1},
			{"v2.0.0", "1.9.9", 1},
		} {
			got, err := Compare(tc.a, tc.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, tc.want)
		}

		_, err := Compare("1.0", "1.0.0")
		So(err, ShouldNotBeNil)
	})
}
