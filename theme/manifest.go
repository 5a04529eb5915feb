// Package theme derives editor icon-theme manifests and the package descriptor from a definition table.
package theme

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/codecharm-icons/codecharm/filesystem"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Root icon ids, always present in every manifest.
const (
	RootFile       = "_file"
	RootFolder     = "_folder"
	RootFolderOpen = "_folder_open"
)

// IconDefinition points an icon id at its SVG artifact.
type IconDefinition struct {
	IconPath string `json:"iconPath" jsonschema:"required"`
}

// Manifest is the icon-theme document consumed by the editor host.
// JSON field names are a compatibility contract with that host.
type Manifest struct {
	HidesExplorerArrows bool                      `json:"hidesExplorerArrows"`
	IconDefinitions     map[string]IconDefinition `json:"iconDefinitions" jsonschema:"required"`
	File                string                    `json:"file" jsonschema:"required"`
	Folder              string                    `json:"folder" jsonschema:"required"`
	FolderExpanded      string                    `json:"folderExpanded" jsonschema:"required"`
	FolderNames         map[string]string         `json:"folderNames"`
	FolderNamesExpanded map[string]string         `json:"folderNamesExpanded"`
	FileExtensions      map[string]string         `json:"fileExtensions"`
	FileNames           map[string]string         `json:"fileNames"`
	LanguageIds         map[string]string         `json:"languageIds"`
}

func newManifest() *Manifest {
	return &Manifest{
		IconDefinitions:     make(map[string]IconDefinition),
		File:                RootFile,
		Folder:              RootFolder,
		FolderExpanded:      RootFolderOpen,
		FolderNames:         make(map[string]string),
		FolderNamesExpanded: make(map[string]string),
		FileExtensions:      make(map[string]string),
		FileNames:           make(map[string]string),
		LanguageIds:         make(map[string]string),
	}
}

// References returns every icon id the manifest points at, sorted and without duplicates.
func (m *Manifest) References() []string {
	refs := []string{m.File, m.Folder, m.FolderExpanded}
	for _, table := range []map[string]string{m.FileExtensions, m.FileNames, m.FolderNames, m.FolderNamesExpanded, m.LanguageIds} {
		refs = append(refs, lo.Values(table)...)
	}
	refs = lo.Uniq(refs)
	slices.Sort(refs)
	return refs
}

// Dangling returns referenced ids that have no icon definition.
func (m *Manifest) Dangling() []string {
	return lo.Filter(m.References(), func(id string, _ int) bool {
		_, ok := m.IconDefinitions[id]
		return !ok
	})
}

// Encode serializes the manifest as indented JSON.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Write stores the manifest at path, creating the parent directory if needed.
func Write(m *Manifest, path string) error {
	data, err := m.Encode()
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := filesystem.API().MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := filesystem.API().WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Read parses a manifest file.
func Read(path string) (*Manifest, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", filepath.Base(path), err)
	}
	return &m, nil
}
