// Package config loads the application configuration.
//
// Values come from a .env file (if present) and environment variables,
// bound through Viper. Defaults live in the `default` struct tags of each
// section and are registered reflectively, so every key is reachable as an
// environment variable (server.port -> SERVER_PORT).
//
//	cfg, err := config.LoadConfig(".")
//
// Sections:
//
//   - Server: port, API key, request body cap
//   - Log: level and format
//   - Storage: S3/MinIO credentials and bucket
//   - Database: driver and connection details
//   - Converter: preserve_inconvertible_data, cache size
//   - Mappings: mapping source (file, storage, database) and refresh interval
package config
