package meshes

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/louisbranch/rgbprops/internal/catalog"
)

// Manifest overrides mesh dataset locations. Deployments with meshes outside
// the default assets tree point RGBPROPS_MANIFEST at one of these files.
type Manifest struct {
	Datasets map[string]ManifestDataset `yaml:"datasets"`
}

// ManifestDataset overrides one version's mesh directories and scale. Keys in
// the manifest are version tags such as "rgb_v1".
type ManifestDataset struct {
	MeshDirs []string `yaml:"mesh_dirs"`
	Scale    float64  `yaml:"scale"`
}

// LoadManifest reads and parses a YAML mesh manifest.
func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read mesh manifest: %w", err)
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return Manifest{}, fmt.Errorf("parse mesh manifest: %w", err)
	}
	return manifest, nil
}

// Apply folds manifest overrides into the descriptor map. Unknown version
// tags are rejected so typos do not silently leave defaults in place.
func (m Manifest) Apply(descriptors map[catalog.Version]Descriptor) error {
	for tag, override := range m.Datasets {
		version, err := catalog.ParseVersion(tag)
		if err != nil {
			return fmt.Errorf("mesh manifest: %w", err)
		}
		descriptor, ok := descriptors[version]
		if !ok {
			return fmt.Errorf("mesh manifest: no descriptor for version %s", version)
		}
		if len(override.MeshDirs) > 0 {
			descriptor.MeshDirs = append([]string{}, override.MeshDirs...)
		}
		if override.Scale > 0 {
			descriptor.Scale = override.Scale
		}
		descriptors[version] = descriptor
	}
	return nil
}
