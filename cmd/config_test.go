package cmd

import (
	"testing"

	"github.com/codecharm-icons/codecharm/config"
	"github.com/codecharm-icons/codecharm/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseValue(t *testing.T) {
	Convey("Given registered fields", t, func() {
		field := func(k string) config.Field {
			f, err := lookupField(k)
			So(err, ShouldBeNil)
			return f
		}

		Convey("Values take the type of the default", func() {
			v, err := parseValue(field(key.LogsWrite), []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			v, err = parseValue(field(key.GenerateVariants), []string{"soft", "base"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"soft", "base"})
		})

		Convey("Values the generators would reject are refused", func() {
			for _, tc := range []struct {
				key string
				raw []string
			}{
				{key.LogsWrite, []string{"maybe"}},
				{key.GenerateVariants, []string{"bsae"}},
				{key.GenerateCollisions, []string{"first"}},
				{key.ProductVersion, []string{"1.0"}},
				{key.CliGlyphs, []string{"kaomoji"}},
			} {
				_, err := parseValue(field(tc.key), tc.raw)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Unknown keys suggest the closest one", func() {
			_, err := lookupField("output.theme")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.OutputThemes)
		})
	})
}
