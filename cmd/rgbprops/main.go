// Command rgbprops inspects the RGB-object dataset: identifier sets,
// deformation axes, triplet sampling, mesh resolution and CAD parameters.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/louisbranch/rgbprops/internal/catalog"
	"github.com/louisbranch/rgbprops/internal/meshes"
	"github.com/louisbranch/rgbprops/internal/params"
	"github.com/louisbranch/rgbprops/internal/platform/config"
	"github.com/louisbranch/rgbprops/internal/sampler"
	"github.com/louisbranch/rgbprops/internal/taxonomy"
)

const usage = `usage: rgbprops <command> [flags]

commands:
  sets              print the identifier partition
  axes              print the per-axis identifier lists
  names             list the named dataset registry keys
  sample -name KEY  draw triplets from a named dataset entry
  meshes            list resolved mesh file paths
  mesh -id ID       resolve one object's mesh file
  params -id ID     print one object's generation parameters
  minmax            print per-parameter bounds across the dataset
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var cfg meshes.Config
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := run(os.Args[1], os.Args[2:], cfg); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(command string, args []string, cfg meshes.Config) error {
	switch command {
	case "sets":
		return runSets()
	case "axes":
		return runAxes()
	case "names":
		return runNames()
	case "sample":
		return runSample(args)
	case "meshes":
		return runMeshes(cfg)
	case "mesh":
		return runMesh(args, cfg)
	case "params":
		return runParams(args)
	case "minmax":
		return runMinMax()
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func runSets() error {
	sets, err := taxonomy.ForVersion(catalog.V1)
	if err != nil {
		return err
	}
	fmt.Printf("full (%d): %v\n", len(sets.Full), sets.Full)
	fmt.Printf("train (%d): %v\n", len(sets.Train), sets.Train)
	fmt.Printf("heldout (%d): %v\n", len(sets.Heldout), sets.Heldout)
	fmt.Printf("test (%d): %v\n", len(sets.Test), sets.Test)
	fmt.Printf("excluded (%d): %v\n", len(sets.Excluded), sets.Excluded)
	return nil
}

func runAxes() error {
	for _, axis := range taxonomy.DeformationAxisKeys {
		fmt.Printf("%s: %v\n", axis, taxonomy.DeformationAxes[axis])
	}
	return nil
}

func newRegistry() (*sampler.Registry, error) {
	s, err := sampler.New()
	if err != nil {
		return nil, err
	}
	return sampler.NewRegistry(s), nil
}

func runNames() error {
	registry, err := newRegistry()
	if err != nil {
		return err
	}
	for _, name := range registry.Names() {
		fmt.Println(name)
	}
	return nil
}

func runSample(args []string) error {
	fs := flag.NewFlagSet("sample", flag.ContinueOnError)
	name := fs.String("name", "train_random", "named dataset entry to draw from")
	count := fs.Int("n", 1, "number of triplets to draw")
	if err := fs.Parse(args); err != nil {
		return err
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	for i := 0; i < *count; i++ {
		triplet, err := registry.Sample(*name)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s %s\n", triplet.IDs[0], triplet.IDs[1], triplet.IDs[2])
	}
	return nil
}

func newResolver(cfg meshes.Config) (*meshes.Resolver, error) {
	descriptors := meshes.Descriptors(cfg.AssetsDir)
	if cfg.ManifestPath != "" {
		manifest, err := meshes.LoadManifest(cfg.ManifestPath)
		if err != nil {
			return nil, err
		}
		if err := manifest.Apply(descriptors); err != nil {
			return nil, err
		}
	}
	return meshes.NewResolver(descriptors), nil
}

func runMeshes(cfg meshes.Config) error {
	resolver, err := newResolver(cfg)
	if err != nil {
		return err
	}
	paths, err := resolver.Resolve(catalog.V1)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}

func runMesh(args []string, cfg meshes.Config) error {
	fs := flag.NewFlagSet("mesh", flag.ContinueOnError)
	objectID := fs.String("id", "", "object identifier (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *objectID == "" {
		return fmt.Errorf("flag -id is required")
	}

	resolver, err := newResolver(cfg)
	if err != nil {
		return err
	}
	path, err := resolver.LookupMesh(catalog.V1, *objectID)
	if err != nil {
		return err
	}
	fmt.Println(path)
	return nil
}

func runParams(args []string) error {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	objectID := fs.String("id", "", "object identifier (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *objectID == "" {
		return fmt.Errorf("flag -id is required")
	}

	accessor, err := params.NewAccessor()
	if err != nil {
		return err
	}
	record, err := accessor.Get(catalog.V1, *objectID)
	if err != nil {
		return err
	}
	for _, name := range record.Names {
		fmt.Printf("%s: %g\n", name, record.Values[name])
	}
	return nil
}

func runMinMax() error {
	accessor, err := params.NewAccessor()
	if err != nil {
		return err
	}
	mins, maxs, err := accessor.MinMax(catalog.V1)
	if err != nil {
		return err
	}
	for _, name := range mins.Names {
		fmt.Printf("%s: min %g max %g\n", name, mins.Values[name], maxs.Values[name])
	}
	return nil
}
