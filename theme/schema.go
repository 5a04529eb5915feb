package theme

import "github.com/invopop/jsonschema"

// Schema returns the JSON schema of the manifest document.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		Anonymous:                  true,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
	}
	return reflector.Reflect(&Manifest{})
}
