package bootstrap

import (
	"context"
	"fmt"

	"resume-matcher/internal/catalog"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/storage/object"
	s3store "resume-matcher/internal/shared/storage/object/s3"
	"resume-matcher/internal/shared/telemetry"
)

// loadCatalog resolves CatalogFile as an s3:// URI, a local file, or the
// built-in catalog when blank.
func loadCatalog(ctx context.Context, cfg config.Config) (catalog.Catalog, error) {
	loc, isS3, err := object.ParseS3URI(cfg.CatalogFile)
	if err != nil {
		return catalog.Catalog{}, err
	}
	if !isS3 {
		return catalog.Resolve(cfg.CatalogFile)
	}

	store, err := s3store.New(ctx, cfg.AWSRegion, loc.Bucket)
	if err != nil {
		return catalog.Catalog{}, err
	}
	return loadObjectCatalog(ctx, store, loc)
}

func loadObjectCatalog(ctx context.Context, store object.Reader, loc object.Location) (catalog.Catalog, error) {
	name := "s3://" + loc.Bucket + "/" + loc.Key
	format := catalog.FormatOf(loc.Key)
	if format == "" {
		return catalog.Catalog{}, fmt.Errorf("catalog %s: cannot infer format from key", name)
	}

	rc, err := store.Open(ctx, loc.Key)
	if err != nil {
		return catalog.Catalog{}, err
	}
	defer rc.Close()

	cat, err := catalog.Decode(rc, format, name)
	if err != nil {
		return catalog.Catalog{}, err
	}
	telemetry.Info("catalog.loaded", map[string]any{"source": name, "skills": len(cat.Skills), "jobs": len(cat.Jobs)})
	return cat, nil
}
