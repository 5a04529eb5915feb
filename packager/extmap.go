package packager

import (
	"strings"

	"github.com/samber/lo"
)

// Language is a curated group of extensions an IDE package maps to one icon.
type Language struct {
	Name       string
	Extensions []string
}

// ExtensionMap is the simplified language table used by platform packages.
// It is intentionally smaller than the definition table: IDE packages only map common languages.
var ExtensionMap = []Language{
	{"javascript", []string{"js", "jsx", "mjs", "cjs"}},
	{"typescript", []string{"ts", "tsx", "mts", "cts"}},
	{"python", []string{"py", "pyw", "pyi"}},
	{"java", []string{"java"}},
	{"c", []string{"c", "h"}},
	{"cpp", []string{"cpp", "cc", "cxx", "hpp", "hxx"}},
	{"csharp", []string{"cs"}},
	{"go", []string{"go"}},
	{"rust", []string{"rs"}},
	{"php", []string{"php"}},
	{"ruby", []string{"rb"}},
	{"swift", []string{"swift"}},
	{"kotlin", []string{"kt", "kts"}},
	{"dart", []string{"dart"}},
	{"lua", []string{"lua"}},
	{"luau", []string{"luau"}},
	{"sql", []string{"sql"}},
	{"html", []string{"html", "htm"}},
	{"css", []string{"css"}},
	{"scss", []string{"scss", "sass"}},
	{"json", []string{"json"}},
	{"yaml", []string{"yaml", "yml"}},
	{"xml", []string{"xml"}},
	{"markdown", []string{"md"}},
	{"shell", []string{"sh", "bash", "zsh"}},
	{"powershell", []string{"ps1"}},
	{"docker", []string{"dockerfile"}},
	{"git", []string{"gitignore", "gitattributes"}},
}

// LanguageOf normalizes an icon name into an ExtensionMap key.
func LanguageOf(icon string) string {
	return strings.ReplaceAll(strings.TrimPrefix(icon, "lang_"), "-", "")
}

// Extensions returns the mapped extensions of an icon, if its language is known.
func Extensions(icon string) ([]string, bool) {
	lang, ok := lo.Find(ExtensionMap, func(l Language) bool {
		return l.Name == LanguageOf(icon)
	})
	return lang.Extensions, ok
}
