// Package region_di builds the reverse-geocode collaborator from a
// caller-provided boundary file, the same "small, in-memory collaborator
// supplied by the caller" role SPEC_FULL.md describes.
package region_di

import (
	"os"

	"github.com/bootinge/omim/pkg/region"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// New reads BOUNDARIES_FILE (a YAML list of region.Boundary) if configured,
// otherwise returns a Resolver with no boundaries: every point then
// resolves to an empty Label, exactly as a world tile carries no country
// name.
func New() (*region.Resolver, error) {
	viper.SetDefault("BOUNDARIES_FILE", "")
	path := viper.GetString("BOUNDARIES_FILE")
	if path == "" {
		return region.NewResolver(nil), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var boundaries []region.Boundary
	if err := yaml.Unmarshal(data, &boundaries); err != nil {
		return nil, err
	}

	return region.NewResolver(boundaries), nil
}
