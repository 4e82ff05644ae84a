// Package reconcile detects drift between two mapping sources, for example
// the mapping document on disk and the rows stored in the database.
//
// Both sides are loaded concurrently and flattened into entries keyed by
// (domain, id). The engine builds the union of keys, flags presence per
// side and reports value mismatches. Results are sorted for stable output.
// Loaded tables can be cached per spec with a TTL; concurrent rebuilds are
// collapsed with singleflight.
//
//	spec := &reconcile.Spec{
//	    Left:  reconcile.Side{Name: "file", Loader: mappings.FileLoader{Path: "mappings.yaml"}},
//	    Right: reconcile.Side{Name: "database", Loader: mappings.DatabaseLoader{DB: db, Pair: pair}},
//	}
//	report, err := reconcile.ReconcileAll(ctx, spec)
//
// ReconcileWithPlan and ApplyPlan push the left tables into the right side
// once the caller confirms.
package reconcile
