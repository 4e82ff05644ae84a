// Package item exposes legacy item translation over HTTP.
//
// The Service decodes structured items from JSON, folds them into legacy
// documents with the legacy converter and keeps recent results in an LRU
// cache that is purged whenever the mapping tables are refreshed.
//
// Routes:
//
//	POST /items/legacy      translate one item (?format=snbt for plain SNBT)
//	GET  /items/components  list supported component kinds
//	GET  /items/mappings    describe the loaded mapping tables
package item
