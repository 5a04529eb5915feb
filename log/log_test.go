package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/codecharm-icons/codecharm/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		Reset(viper.Reset)

		Convey("Setup succeeds and entries are discarded", func() {
			So(Setup(), ShouldBeNil)
			So(With(logrus.Fields{"variant": "base"}).Logger, ShouldEqual, discard)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "not-a-level")
		Reset(viper.Reset)

		Convey("Setup creates the dated log file and falls back to info level", func() {
			So(Setup(), ShouldBeNil)
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}
