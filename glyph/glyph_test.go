package glyph

import (
	"testing"

	"github.com/codecharm-icons/codecharm/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every registered glyph", t, func() {
		Convey("It renders for each style", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.CliGlyphs, variant)
					for g := range glyphs {
						So(Get(g), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("It returns empty for an unknown style", func() {
			viper.Set(key.CliGlyphs, "")
			So(Get(Success), ShouldBeEmpty)
		})
	})
}
