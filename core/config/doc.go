// Package config provides configuration management for roster-manager.
//
// It utilizes Viper for loading configuration from environment variables
// and a local .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, upload limit)
//   - Storage: S3/MinIO credentials and snapshot bucket settings
//   - Log: Logging level and format
//   - Reconcile: Baseline membership total for reconciliation reports
//   - Sheet: Export sheet label
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
