// Package config provides configuration management for the bookstore service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults are declared next to each setting with a
// `default` struct tag.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, environment)
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials and the bucket holding book images
//   - Log: Logging level and format
//   - Pagination: default and maximum page sizes
//   - Cache: TTLs for in-process caches
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
