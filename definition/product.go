package definition

// Product identifies the theme family across descriptors and platform packages.
type Product struct {
	Name        string
	DisplayName string
	Version     string
}

// ThemeID returns the stable registration id for a variant, <product>-<variant>.
func (p Product) ThemeID(v Variant) string {
	return p.Name + "-" + string(v)
}

// ThemeFile returns the manifest file name for a variant.
func (p Product) ThemeFile(v Variant) string {
	return p.ThemeID(v) + ".json"
}

// ThemeLabel returns the human readable theme label for a variant.
func (p Product) ThemeLabel(v Variant) string {
	return p.DisplayName + " (" + v.Title() + ")"
}
