package meshes

import (
	"io/fs"
	"math/rand"
	"path/filepath"
	"strings"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/rgbprops/internal/catalog"
)

// Resolver scans descriptor directories for mesh files and caches the result
// per version. One resolver is constructed by the composition root and shared;
// the cache lives until ClearCache.
type Resolver struct {
	mu          sync.Mutex
	descriptors map[catalog.Version]Descriptor
	cache       map[catalog.Version][]string

	// walk is swapped out by tests to count scans.
	walk func(root string, fn fs.WalkDirFunc) error
}

// NewResolver creates a resolver over the given descriptors with an empty
// cache.
func NewResolver(descriptors map[catalog.Version]Descriptor) *Resolver {
	return &Resolver{
		descriptors: descriptors,
		cache:       make(map[catalog.Version][]string),
		walk:        filepath.WalkDir,
	}
}

// Resolve returns the mesh file paths of one version. The first call per
// version scans the descriptor's directories recursively; later calls return
// the cached result. Directories that are missing or unreadable contribute no
// paths.
func (r *Resolver) Resolve(version catalog.Version) ([]string, error) {
	descriptor, ok := r.descriptors[version]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "no mesh dataset for version %s", version)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	paths, ok := r.cache[version]
	if !ok {
		paths = r.scan(descriptor)
		r.cache[version] = paths
	}
	out := make([]string, len(paths))
	copy(out, paths)
	return out, nil
}

// ClearCache drops all cached scan results; the next Resolve per version
// scans disk again.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[catalog.Version][]string)
}

// Scale returns the descriptor's uniform mesh scale for one version.
func (r *Resolver) Scale(version catalog.Version) (float64, error) {
	descriptor, ok := r.descriptors[version]
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "no mesh dataset for version %s", version)
	}
	return descriptor.Scale, nil
}

// LookupMesh finds the mesh file of one object identifier. The identifier is
// extracted from each discovered file name; a miss reports the directories
// that were searched.
func (r *Resolver) LookupMesh(version catalog.Version, objectID string) (string, error) {
	paths, err := r.Resolve(version)
	if err != nil {
		return "", err
	}
	descriptor := r.descriptors[version]
	for _, path := range paths {
		if descriptor.ObjectIDFromFile(path) == objectID {
			return path, nil
		}
	}
	return "", status.Errorf(codes.NotFound, "object id %s does not exist in directories %v",
		objectID, descriptor.MeshDirs)
}

// RandomMesh draws one mesh file uniformly from the version's dataset and
// returns its path and extracted object identifier.
func (r *Resolver) RandomMesh(version catalog.Version, rng *rand.Rand) (string, string, error) {
	paths, err := r.Resolve(version)
	if err != nil {
		return "", "", err
	}
	descriptor := r.descriptors[version]
	if len(paths) == 0 {
		return "", "", status.Errorf(codes.NotFound, "no mesh files in directories %v", descriptor.MeshDirs)
	}
	path := paths[rng.Intn(len(paths))]
	return path, descriptor.ObjectIDFromFile(path), nil
}

// scan walks every descriptor directory collecting mesh files. Walk errors
// are treated as empty directories, not failures.
func (r *Resolver) scan(descriptor Descriptor) []string {
	var paths []string
	for _, dir := range descriptor.MeshDirs {
		_ = r.walk(dir, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), MeshExt) {
				return nil
			}
			if abs, absErr := filepath.Abs(path); absErr == nil {
				path = abs
			}
			paths = append(paths, path)
			return nil
		})
	}
	return paths
}
