package verify

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/codecharm-icons/codecharm/iconset"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/codecharm-icons/codecharm/theme"
	"github.com/codecharm-icons/codecharm/util"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.CliGlyphs, "plain")
}

var product = definition.Product{Name: "codecharm", DisplayName: "CodeCharm Icons", Version: "1.0.0"}

func options() Options {
	return Options{
		IconsDir:   "/out/icons",
		ThemesDir:  "/out/themes",
		Descriptor: "/out/package.json",
		Variants:   definition.Variants(),
		Product:    product,
	}
}

func generate() *iconset.Result {
	filesystem.SetMemMapFs()
	opts := options()
	table := lo.Must(definition.Embedded())
	built := lo.Must(iconset.Build(table, iconset.Options{Dir: opts.IconsDir, Variants: opts.Variants}))
	lo.Must(theme.BuildAll(table, theme.BuildOptions{
		IconsDir:  opts.IconsDir,
		ThemesDir: opts.ThemesDir,
		Variants:  opts.Variants,
		Product:   product,
	}))
	lo.Must(theme.WriteDescriptor(opts.Descriptor, opts.ThemesDir, product, opts.Variants))
	return built
}

func TestRun(t *testing.T) {
	Convey("Given a complete generation", t, func() {
		generate()
		report := Run(options())

		Convey("There are no errors or warnings", func() {
			So(report.Errors(), ShouldEqual, 0)
			So(report.Warnings(), ShouldEqual, 0)
			So(report.OK(), ShouldBeTrue)
		})

		Convey("Counts are recorded per variant", func() {
			for _, v := range definition.Variants() {
				So(report.Counts[v].Files, ShouldBeGreaterThan, 0)
				So(report.Counts[v].Folders, ShouldBeGreaterThan, 0)
				So(report.Counts[v].Definitions, ShouldBeGreaterThan, 0)
			}
			So(report.Themes, ShouldEqual, 4)
		})

		Convey("Verification does not touch the artifacts", func() {
			before := lo.Must(filesystem.API().ReadFile("/out/themes/codecharm-base.json"))
			Run(options())
			So(lo.Must(filesystem.API().ReadFile("/out/themes/codecharm-base.json")), ShouldResemble, before)
		})

		Convey("The printed report ends with a pass", func() {
			var buf bytes.Buffer
			report.Print(&buf)
			So(buf.String(), ShouldContainSubstring, "All checks passed")
		})
	})

	Convey("Given the soft folders directory is missing", t, func() {
		built := generate()
		So(util.Delete(filepath.Join("/out/icons", "soft", "folders")), ShouldBeNil)

		report := Run(options())
		So(report.Errors(), ShouldEqual, 1)

		for _, v := range []definition.Variant{definition.Base, definition.Light, definition.Warm} {
			So(report.Counts[v].Files, ShouldEqual, built.Counts[v].Files)
			So(report.Counts[v].Folders, ShouldEqual, built.Counts[v].Folders)
		}
		So(report.Counts[definition.Soft].Files, ShouldEqual, built.Counts[definition.Soft].Files)
		So(report.Counts[definition.Soft].Files, ShouldBeGreaterThan, 0)
		So(report.Counts[definition.Soft].Folders, ShouldEqual, 0)
		So(report.Findings, ShouldContain, Finding{
			Section:  SectionIcons,
			Severity: SeverityError,
			Message:  "missing: " + filepath.Join("/out/icons", "soft", "folders"),
		})

		var buf bytes.Buffer
		report.Print(&buf)
		So(buf.String(), ShouldContainSubstring, "Found 1 error")
	})

	Convey("Given a broken theme manifest", t, func() {
		generate()
		So(filesystem.API().WriteFile("/out/themes/codecharm-warm.json", []byte("{"), 0o644), ShouldBeNil)

		report := Run(options())
		So(report.Errors(), ShouldEqual, 1)
		So(lo.ContainsBy(report.Findings, func(f Finding) bool {
			return f.Severity == SeverityError && strings.HasPrefix(f.Message, "invalid JSON in codecharm-warm.json")
		}), ShouldBeTrue)
	})

	Convey("Given a manifest without required fields", t, func() {
		generate()
		So(filesystem.API().WriteFile("/out/themes/codecharm-light.json", []byte(`{"file": "_file"}`), 0o644), ShouldBeNil)

		report := Run(options())
		So(report.Errors(), ShouldEqual, 1)
		So(report.Findings, ShouldContain, Finding{
			Section:  SectionThemes,
			Severity: SeverityError,
			Message:  "codecharm-light.json missing fields: iconDefinitions, folder, folderExpanded",
		})
	})

	Convey("Given a manifest pointing at another variant", t, func() {
		generate()
		m := lo.Must(theme.Read("/out/themes/codecharm-base.json"))
		m.IconDefinitions["_file"] = theme.IconDefinition{IconPath: "../icons/warm/files/file.svg"}
		So(theme.Write(m, "/out/themes/codecharm-base.json"), ShouldBeNil)

		report := Run(options())
		So(report.Errors(), ShouldEqual, 0)
		So(report.Warnings(), ShouldEqual, 1)
		So(report.OK(), ShouldBeTrue)
	})

	Convey("Given a dangling reference", t, func() {
		generate()
		m := lo.Must(theme.Read("/out/themes/codecharm-base.json"))
		m.FileExtensions["zzz"] = "nowhere"
		So(theme.Write(m, "/out/themes/codecharm-base.json"), ShouldBeNil)

		report := Run(options())
		So(report.Errors(), ShouldEqual, 1)
	})

	Convey("Given a descriptor that misses a variant", t, func() {
		generate()
		lo.Must(theme.WriteDescriptor("/out/package.json", "/out/themes", product, []definition.Variant{definition.Base}))

		report := Run(options())
		So(report.Errors(), ShouldEqual, 3)
		So(report.Themes, ShouldEqual, 1)
	})

	Convey("Given nothing was generated", t, func() {
		filesystem.SetMemMapFs()

		report := Run(options())
		So(report.Errors(), ShouldEqual, 4*2+4+1)
		So(report.OK(), ShouldBeFalse)
	})
}
