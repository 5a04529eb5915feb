package config

import (
	"github.com/codecharm-icons/codecharm/definition"
	"github.com/codecharm-icons/codecharm/key"
	"github.com/spf13/viper"
)

// Variants returns the configured variants in order, rejecting unknown names.
func Variants() ([]definition.Variant, error) {
	return definition.ParseVariants(viper.GetStringSlice(key.GenerateVariants))
}

// Policy returns the configured collision policy.
func Policy() (definition.Policy, error) {
	return definition.ParsePolicy(viper.GetString(key.GenerateCollisions))
}

// Product returns the configured product identity.
func Product() definition.Product {
	return definition.Product{
		Name:        viper.GetString(key.ProductName),
		DisplayName: viper.GetString(key.ProductDisplayName),
		Version:     viper.GetString(key.ProductVersion),
	}
}

// Table loads the definition table from definitions.path, or the embedded one when unset.
func Table() (*definition.Table, error) {
	if path := viper.GetString(key.DefinitionsPath); path != "" {
		return definition.Load(path)
	}
	return definition.Embedded()
}
