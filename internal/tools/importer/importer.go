// Package importer writes the RGB-object generation catalog into a SQLite
// parameter store.
package importer

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/louisbranch/rgbprops/internal/catalog"
	paramsqlite "github.com/louisbranch/rgbprops/internal/params/sqlite"
)

// Config holds the importer inputs.
type Config struct {
	DBPath  string
	Version catalog.Version
}

// ParseConfig reads importer flags from args.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	dbPath := fs.String("db", "", "path to the SQLite parameter catalog database (required)")
	versionTag := fs.String("version", catalog.V1.String(), "catalog version tag to import")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *dbPath == "" {
		return Config{}, fmt.Errorf("flag -db is required")
	}
	version, err := catalog.ParseVersion(*versionTag)
	if err != nil {
		return Config{}, err
	}
	return Config{DBPath: *dbPath, Version: version}, nil
}

// Run imports every object record of the configured version into the store.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	nicknames, err := catalog.Nicknames(cfg.Version)
	if err != nil {
		return err
	}
	records, err := catalog.GenerationParams(cfg.Version)
	if err != nil {
		return err
	}

	store, err := paramsqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, objectID := range nicknames {
		if err := store.PutObject(ctx, cfg.Version, objectID, records[objectID]); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "imported %d objects for %s into %s\n", len(nicknames), cfg.Version, cfg.DBPath)
	return nil
}
