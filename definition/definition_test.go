package definition

import (
	"errors"
	"testing"

	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestEmbedded(t *testing.T) {
	Convey("Given the embedded definition table", t, func() {
		table, err := Embedded()
		So(err, ShouldBeNil)

		Convey("Every variant has a palette", func() {
			for _, v := range Variants() {
				So(table.Palettes, ShouldContainKey, v)
			}
		})

		Convey("The default entries are present", func() {
			So(table.Icon(DefaultFile).IsPresent(), ShouldBeTrue)
			So(table.Folder(DefaultFolder).IsPresent(), ShouldBeTrue)
		})

		Convey("Declaration order is kept", func() {
			So(table.Icons[0].Name, ShouldEqual, "javascript")
			So(table.Icons[len(table.Icons)-1].Name, ShouldEqual, DefaultFile)
		})

		Convey("Every referenced role resolves in every palette", func() {
			So(table.MissingRoles(), ShouldBeEmpty)
		})

		Convey("Filename-only entries carry no extensions", func() {
			angular := table.Icon("angular").MustGet()
			So(angular.Extensions, ShouldBeEmpty)
			So(angular.Filenames, ShouldResemble, []string{"angular.json"})
		})

		Convey("The git entry backs the ignore language override", func() {
			So(table.Icon("git").IsPresent(), ShouldBeTrue)
		})
	})
}

func TestParse(t *testing.T) {
	palettes := `
palettes:
  base: {primary: "#89b4fa"}
  light: {primary: "#1e66f5"}
  soft: {primary: "#7287fd"}
  warm: {primary: "#ff9e64"}
`

	Convey("Given a minimal table", t, func() {
		table, err := Parse([]byte(palettes + `
icons:
  - name: python
    color: primary
    extensions: [".py", py3, ""]
`))
		So(err, ShouldBeNil)

		Convey("Extensions are normalized", func() {
			So(table.Icon("python").MustGet().Extensions, ShouldResemble, []string{"py", "py3"})
		})

		Convey("Missing defaults are added", func() {
			So(table.Icon(DefaultFile).MustGet().Role, ShouldEqual, FallbackRole)
			So(table.Folder(DefaultFolder).IsPresent(), ShouldBeTrue)
		})

		Convey("Roles absent from a palette are reported, not rejected", func() {
			missing := table.MissingRoles()
			So(missing[Base], ShouldContain, Role("file"))
			So(missing[Base], ShouldContain, Role("folder"))
			So(missing[Base], ShouldNotContain, Role("primary"))
		})
	})

	Convey("Duplicate names are rejected", t, func() {
		_, err := Parse([]byte(palettes + `
icons:
  - {name: go, color: primary}
  - {name: go, color: accent}
`))
		So(errors.Is(err, ErrDuplicateEntry), ShouldBeTrue)
	})

	Convey("A missing palette is rejected", t, func() {
		_, err := Parse([]byte(`
palettes:
  base: {primary: "#89b4fa"}
`))
		So(errors.Is(err, ErrMissingPalette), ShouldBeTrue)
	})

	Convey("An unknown palette variant is rejected with a suggestion", t, func() {
		_, err := Parse([]byte(palettes + `
  wram: {primary: "#ff9e64"}
`))
		So(errors.Is(err, ErrUnknownVariant), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, `"warm"`)
	})

	Convey("Malformed colors are rejected", t, func() {
		_, err := Parse([]byte(`
palettes:
  base: {primary: "blue"}
  light: {primary: "#1e66f5"}
  soft: {primary: "#7287fd"}
  warm: {primary: "#ff9e64"}
`))
		So(errors.Is(err, ErrInvalidColor), ShouldBeTrue)
	})

	Convey("Load reads through the filesystem backend", t, func() {
		So(filesystem.API().WriteFile("/defs.yaml", []byte(palettes), 0o644), ShouldBeNil)
		table, err := Load("/defs.yaml")
		So(err, ShouldBeNil)
		So(table.Icons, ShouldHaveLength, 1)

		_, err = Load("/missing.yaml")
		So(err, ShouldNotBeNil)
	})
}

func TestPalette(t *testing.T) {
	Convey("Given a palette", t, func() {
		p := Palette{Variant: Base, Colors: map[Role]string{"primary": "#89b4fa", "file": "#cba6f7"}}

		Convey("Known roles resolve directly", func() {
			So(p.Resolve("primary"), ShouldEqual, "#89b4fa")
		})

		Convey("Unknown roles resolve to the fallback role", func() {
			So(p.Resolve("nonexistent"), ShouldEqual, "#cba6f7")
		})

		Convey("A palette without the fallback role resolves to the fallback color", func() {
			bare := Palette{Variant: Warm, Colors: map[Role]string{}}
			So(bare.Resolve("primary"), ShouldEqual, FallbackColor)
		})
	})
}

func TestVariant(t *testing.T) {
	Convey("ParseVariant", t, func() {
		v, err := ParseVariant("soft")
		So(err, ShouldBeNil)
		So(v, ShouldEqual, Soft)

		_, err = ParseVariant("lihgt")
		So(errors.Is(err, ErrUnknownVariant), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, `did you mean "light"`)
	})

	Convey("ParseVariants keeps order and drops duplicates", t, func() {
		vs, err := ParseVariants([]string{"warm", "base", "warm"})
		So(err, ShouldBeNil)
		So(vs, ShouldResemble, []Variant{Warm, Base})
	})

	Convey("Title capitalizes", t, func() {
		So(Light.Title(), ShouldEqual, "Light")
	})

	Convey("Product derives theme ids", t, func() {
		p := Product{Name: "codecharm", DisplayName: "CodeCharm Icons"}
		So(p.ThemeID(Soft), ShouldEqual, "codecharm-soft")
		So(p.ThemeFile(Base), ShouldEqual, "codecharm-base.json")
		So(p.ThemeLabel(Warm), ShouldEqual, "CodeCharm Icons (Warm)")
	})
}

func TestClaims(t *testing.T) {
	Convey("Given claims without conflicts", t, func() {
		var c Claims
		c.Add("py", "python", 0)
		c.Add("pyw", "python", 0)
		c.Add("py", "python", 0)

		resolved, collisions, err := c.Resolve(PolicyReject)
		So(err, ShouldBeNil)
		So(collisions, ShouldBeEmpty)
		So(resolved, ShouldResemble, map[string]string{"py": "python", "pyw": "python"})
	})

	Convey("Given an equal-priority collision", t, func() {
		var c Claims
		c.Add("h", "c", 0)
		c.Add("h", "cpp", 0)

		Convey("Reject fails naming both ids", func() {
			_, collisions, err := c.Resolve(PolicyReject)
			So(errors.Is(err, ErrCollision), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "cpp")
			So(collisions, ShouldHaveLength, 1)
		})

		Convey("Last lets the later declaration win and reports it", func() {
			resolved, collisions, err := c.Resolve(PolicyLast)
			So(err, ShouldBeNil)
			So(resolved["h"], ShouldEqual, "cpp")
			So(collisions, ShouldResemble, []Collision{{Key: "h", Winner: "cpp", Losers: []string{"c"}}})
		})
	})

	Convey("Higher priority wins regardless of order or policy", t, func() {
		var c Claims
		c.Add(".github", "folder-.github", 1)
		c.Add(".github", "folder-ci", 0)

		resolved, collisions, err := c.Resolve(PolicyReject)
		So(err, ShouldBeNil)
		So(collisions, ShouldBeEmpty)
		So(resolved[".github"], ShouldEqual, "folder-.github")
	})

	Convey("ParsePolicy", t, func() {
		p, err := ParsePolicy("last")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, PolicyLast)

		_, err = ParsePolicy("first")
		So(err, ShouldNotBeNil)
	})

	Convey("Folder names include the entry's own name once", t, func() {
		f := FolderEntry{Name: "interfaces", Aliases: []string{"interfaces", "types"}}
		So(f.Names(), ShouldResemble, []string{"interfaces", "types"})
		So(lo.Contains(f.Names(), "types"), ShouldBeTrue)
	})
}
