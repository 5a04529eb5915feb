// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Output Layout - these keys locate every generated artifact relative to the output root.
const (
	OutputRoot       = "output.root"
	OutputIcons      = "output.icons"
	OutputThemes     = "output.themes"
	OutputPackages   = "output.packages"
	OutputDescriptor = "output.descriptor"
)

// Generation - these keys select variants and the lookup collision policy.
const (
	GenerateVariants   = "generate.variants"
	GenerateCollisions = "generate.collisions"
)

// Definitions - an optional YAML table replacing the embedded one.
const (
	DefinitionsPath = "definitions.path"
)

// Product Identity - these keys brand the descriptor and the platform packages.
const (
	ProductName        = "product.name"
	ProductDisplayName = "product.display_name"
	ProductVersion     = "product.version"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern terminal output.
const (
	CliColored = "cli.colored"
	CliGlyphs  = "cli.glyphs"
)
