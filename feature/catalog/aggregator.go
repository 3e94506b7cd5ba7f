package catalog

import (
	"context"

	"go.uber.org/zap"
)

// Catalog is the ordered list of visible entries of one request.
type Catalog []Entry

// Aggregator builds a Catalog from the whole bucket listing.
type Aggregator struct {
	store   Store
	builder *Builder
	logger  *zap.Logger
}

// NewAggregator creates an Aggregator over store.
func NewAggregator(store Store, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		store:   store,
		builder: NewBuilder(store),
		logger:  logger,
	}
}

// Build lists the bucket and folds every file into the catalog in listing order.
//
// Objects are processed one at a time. The first error aborts the fold and
// no partial catalog is returned. Folder markers are skipped before any
// other check and entries rejected by term are dropped from the result.
func (a *Aggregator) Build(ctx context.Context, term string) (Catalog, error) {
	objects, err := a.store.ListObjects(ctx)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return Catalog{}, nil
	}

	entries := make([]Entry, 0, len(objects))
	folders := 0
	for _, obj := range objects {
		if obj.IsFolder() {
			folders++
			continue
		}

		entry, err := a.builder.Build(ctx, obj, term)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	visible := make(Catalog, 0, len(entries))
	for _, e := range entries {
		if !e.Hidden {
			visible = append(visible, e)
		}
	}

	a.logger.Debug("Catalog built",
		zap.String("filter", term),
		zap.Int("listed", len(objects)),
		zap.Int("folders", folders),
		zap.Int("hidden", len(entries)-len(visible)),
		zap.Int("visible", len(visible)),
	)

	return visible, nil
}
