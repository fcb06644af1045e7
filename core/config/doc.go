// Package config provides configuration management for bestseller-sync.
//
// It utilizes Viper for loading configuration from environment variables,
// an optional .env file and an optional config.yaml.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Catalog: Audiobookshelf SQLite path, open mode and busy retry policy
//   - Source: NYT Books API endpoint, key and published date
//   - Sync: library name, title match strictness and the collection to list mapping
//   - Storage: S3/MinIO snapshot archive
//   - Server: service mode port and API key
//   - Log: Logging level and format
//
// Scalar settings map to SECTION_KEY environment variables (CATALOG_PATH, SOURCE_API_KEY,
// SYNC_LIBRARY). The collection mapping is a list and is read from config.yaml only:
//
//	sync:
//	  collections:
//	    - name: NYT Fiction
//	      lists: [hardcover-fiction, trade-fiction-paperback]
//
// Without a mapping, a single "NY Times Best Sellers" collection fed by every list is used.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Catalog.Path)
package config
