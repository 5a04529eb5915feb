package where

import (
	"path/filepath"
	"testing"

	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}

func TestOutputPaths(t *testing.T) {
	Convey("Given an output root", t, func() {
		viper.Set(key.OutputRoot, "/out")
		viper.Set(key.OutputIcons, "icons")
		viper.Set(key.OutputThemes, "themes")
		viper.Set(key.OutputPackages, "/abs/packages")
		viper.Set(key.OutputDescriptor, "package.json")
		Reset(viper.Reset)

		Convey("Relative paths are joined onto the root", func() {
			So(Icons(), ShouldEqual, filepath.Join("/out", "icons"))
			So(Themes(), ShouldEqual, filepath.Join("/out", "themes"))
			So(Descriptor(), ShouldEqual, filepath.Join("/out", "package.json"))
		})

		Convey("Absolute paths are kept as is", func() {
			So(Packages(), ShouldEqual, "/abs/packages")
		})

		Convey("An empty root falls back to the working directory", func() {
			viper.Set(key.OutputRoot, "")
			So(Root(), ShouldEqual, ".")
		})
	})
}
