// Package meshes resolves RGB-object mesh files on disk. Each dataset version
// describes where its STL files live; the resolver scans those directories
// once and caches the discovered paths until explicitly cleared.
package meshes

import (
	"math/rand"
	"path/filepath"
	"strings"

	"github.com/louisbranch/rgbprops/internal/catalog"
	"github.com/louisbranch/rgbprops/internal/taxonomy"
)

// MeshExt is the mesh file extension the resolver looks for.
const MeshExt = ".stl"

// MeshScale is the uniform scale factor applied when meshes are instantiated
// as simulation props.
const MeshScale = 1.0

// Config holds the environment-driven mesh location settings.
type Config struct {
	// AssetsDir is the root directory holding per-version mesh trees.
	AssetsDir string `env:"RGBPROPS_ASSETS_DIR" envDefault:"assets"`
	// ManifestPath optionally points at a YAML manifest overriding mesh
	// directories and scale per version.
	ManifestPath string `env:"RGBPROPS_MANIFEST"`
}

// Descriptor describes access to one version's mesh dataset.
type Descriptor struct {
	Version catalog.Version
	// IDs is the version's full identifier list.
	IDs []string
	// MeshDirs are the directories searched for mesh files, in order.
	MeshDirs []string
	// Scale is the uniform mesh scaling factor.
	Scale float64
	// ObjectIDFromFile extracts an object identifier from a mesh file name.
	ObjectIDFromFile func(filename string) string
}

// Descriptors builds the default per-version descriptors under assetsDir.
// Mesh files are split across test-triplet, train and heldout directories.
func Descriptors(assetsDir string) map[catalog.Version]Descriptor {
	return map[catalog.Version]Descriptor{
		catalog.V1: {
			Version: catalog.V1,
			IDs:     taxonomy.FullSet,
			MeshDirs: []string{
				filepath.Join(assetsDir, "rgb_v1", "meshes", "test_triplets"),
				filepath.Join(assetsDir, "rgb_v1", "meshes", "train"),
				filepath.Join(assetsDir, "rgb_v1", "meshes", "heldout"),
			},
			Scale:            MeshScale,
			ObjectIDFromFile: ObjectIDFromFilename,
		},
	}
}

// ObjectIDFromFilename extracts the object identifier from a mesh file name.
// Filenames follow <identifier>_<parameter-suffix><ext>; directory components
// and the extension are ignored.
func ObjectIDFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if idx := strings.Index(base, "_"); idx >= 0 {
		return base[:idx]
	}
	return base
}

// SizeJitter returns a uniform scale factor in [0.8, 1.1]. Props instantiated
// with jittered sizes encourage more conservative agent behaviour.
func SizeJitter(rng *rand.Rand) float64 {
	return 0.8 + rng.Float64()*0.3
}
