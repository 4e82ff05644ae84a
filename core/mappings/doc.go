// Package mappings holds the identifier tables that translate current
// registry ids into the keys and ids of the legacy protocol version.
//
// # Tables
//
// A Tables value is an immutable snapshot. Lookups never allocate and are
// safe to run from any number of goroutines. The Builder assembles new
// snapshots; nothing mutates a snapshot after Build.
//
// # Sources
//
// Snapshots come from a Loader:
//   - FileLoader: a JSON or YAML document on disk.
//   - StorageLoader: the same document stored in the object storage bucket.
//   - DatabaseLoader: the mapping_sets and mapping_rows tables.
//
// # Refresh
//
// Provider keeps the current snapshot behind an atomic pointer. Refresh
// builds a new snapshot and swaps it in; conversions that already hold the
// previous snapshot finish against it.
//
//	p, err := mappings.NewProvider(ctx, mappings.FileLoader{Path: "mappings.yaml"}, log)
//	go p.Watch(ctx, time.Minute)
//	t := p.Tables()
//	name, ok := t.IDToKey(mappings.DomainEnchantment, 12)
package mappings
