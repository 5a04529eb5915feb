package svg

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/codecharm-icons/codecharm/definition"
	. "github.com/smartystreets/goconvey/convey"
)

// wellFormed decodes every token of doc, failing on malformed XML.
func wellFormed(doc string) error {
	decoder := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func TestRender(t *testing.T) {
	Convey("Given every icon kind", t, func() {
		for _, kind := range []Kind{File, Folder, FolderOpen} {
			Convey("kind="+kind.String(), func() {
				doc := Render(kind, "PYT", "#89b4fa")

				So(doc, ShouldStartWith, `<svg width="32" height="32" viewBox="0 0 32 32"`)
				So(doc, ShouldEndWith, "</svg>\n")
				So(wellFormed(doc), ShouldBeNil)
				So(doc, ShouldContainSubstring, `stroke="#89b4fa"`)
				So(strings.Count(doc, "<path"), ShouldBeBetweenOrEqual, 2, 3)
			})
		}
	})

	Convey("File icons use opacity-scaled fills and a label", t, func() {
		doc := Render(File, "PYT", "#89b4fa")
		So(doc, ShouldContainSubstring, `fill="#89b4fa" opacity="0.2"`)
		So(doc, ShouldContainSubstring, `fill="#89b4fa" opacity="0.4"`)
		So(doc, ShouldContainSubstring, `>PYT</text>`)
	})

	Convey("Folder icons carry no label", t, func() {
		So(Render(Folder, "SRC", "#89dceb"), ShouldNotContainSubstring, "<text")
		So(Render(FolderOpen, "SRC", "#89dceb"), ShouldNotContainSubstring, "<text")
	})

	Convey("Rendering is deterministic", t, func() {
		So(Render(FolderOpen, "", "#000000"), ShouldEqual, Render(FolderOpen, "", "#000000"))
	})

	Convey("Labels are escaped", t, func() {
		doc := Render(File, "<&>", "#000000")
		So(doc, ShouldContainSubstring, "&lt;&amp;&gt;")
		So(wellFormed(doc), ShouldBeNil)
	})
}

func TestLabel(t *testing.T) {
	Convey("Label", t, func() {
		So(Label("python"), ShouldEqual, "PYT")
		So(Label("go"), ShouldEqual, "GO")
		So(Label("c++"), ShouldEqual, "C++")
		So(Label(""), ShouldEqual, "")
	})
}

func TestRenderEntry(t *testing.T) {
	Convey("Given a palette", t, func() {
		palette := definition.Palette{
			Variant: definition.Base,
			Colors:  map[definition.Role]string{"primary": "#89b4fa", "file": "#cba6f7"},
		}

		Convey("Known roles are applied", func() {
			So(RenderEntry(File, "python", "primary", palette), ShouldContainSubstring, `fill="#89b4fa"`)
		})

		Convey("Unknown roles fall back without failing", func() {
			doc := RenderEntry(File, "mystery", "nonexistent", palette)
			So(doc, ShouldContainSubstring, `fill="#cba6f7"`)
			So(doc, ShouldNotContainSubstring, `#89b4fa`)
		})
	})
}
