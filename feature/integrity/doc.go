// Package integrity reports on the health of the translation setup.
//
// Checks cover the converter rule registry, gaps in the loaded mapping
// tables, the mapping document in object storage and the mapping tables in
// the database. Storage and database checks answer 503 when their backend is
// not configured.
package integrity
