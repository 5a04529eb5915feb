package cmd

import (
	"testing"

	"github.com/codecharm-icons/codecharm/definition"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFilterItems(t *testing.T) {
	Convey("Given the embedded file icons", t, func() {
		items := listItems(lo.Must(definition.Embedded()), false)
		names := func(items []listItem) []string {
			return lo.Map(items, func(i listItem, _ int) string { return i.name })
		}

		Convey("An empty query keeps everything", func() {
			So(filterItems(items, ""), ShouldHaveLength, len(items))
		})

		Convey("A fuzzy query matches names", func() {
			So(names(filterItems(items, "pyth")), ShouldContain, "python")
		})

		Convey("An extension matches its entry exactly", func() {
			So(names(filterItems(items, ".rs")), ShouldContain, "rust")
		})

		Convey("Nothing matches gibberish", func() {
			So(filterItems(items, "qqqqzzzz"), ShouldBeEmpty)
		})
	})

	Convey("Given the embedded folders", t, func() {
		items := listItems(lo.Must(definition.Embedded()), true)

		Convey("Aliases are matched exactly", func() {
			matched := filterItems(items, "__tests__")
			So(lo.ContainsBy(matched, func(i listItem) bool { return i.name == "tests" }), ShouldBeTrue)
		})
	})
}
