package sampler

import (
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/rgbprops/internal/catalog"
	"github.com/louisbranch/rgbprops/internal/taxonomy"
)

// Registry maps fixed dataset names to triplet sources. Literal entries
// return their predefined triplet on every call; sampler entries draw a fresh
// triplet on every call.
type Registry struct {
	entries map[string]func() (Triplet, error)
}

// NewRegistry builds the standard named dataset registry over one sampler:
// the five predefined test triplets, the train/heldout/fixed-predefined
// random samplers, and one axis-conditioned sampler per deformation axis.
func NewRegistry(s *Sampler) *Registry {
	entries := make(map[string]func() (Triplet, error))
	for name, triplet := range TestTriplets {
		triplet := triplet
		entries[name] = func() (Triplet, error) { return triplet, nil }
	}
	entries["train_random"] = func() (Triplet, error) {
		return s.RandomTriplet(Request{Version: catalog.V1, IDList: taxonomy.TrainSet})
	}
	entries["heldout_random"] = func() (Triplet, error) {
		return s.RandomTriplet(Request{Version: catalog.V1, IDList: taxonomy.HeldoutSet})
	}
	entries["test_random"] = func() (Triplet, error) {
		return s.FixedRandomTriplet(catalog.V1)
	}
	for name, sample := range s.BlueAxisSamplers(nil) {
		entries[name] = sample
	}
	return &Registry{entries: entries}
}

// Sample draws from the named dataset entry.
func (r *Registry) Sample(name string) (Triplet, error) {
	entry, ok := r.entries[name]
	if !ok {
		return Triplet{}, status.Errorf(codes.NotFound, "unknown prop set %q", name)
	}
	return entry()
}

// Names lists every registered dataset name in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
