// Package constant defines immutable application-level identifiers and generation defaults.
package constant

const (
	// Codecharm is the canonical application identifier used for filesystem paths and CLI branding.
	Codecharm = "codecharm"

	// Version is the current application semantic version string.
	Version = "1.0.0"
)

// Build metadata, overridden through -ldflags at release time.
var (
	BuiltAt  = ""
	BuiltBy  = ""
	Revision = ""
)

// Artifact layout names shared by the generators and the verifier.
const (
	FilesDir   = "files"
	FoldersDir = "folders"
	SVGExt     = ".svg"
	OpenSuffix = "-open"
)
