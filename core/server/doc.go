// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this
// package defines the configuration structure for server settings: the
// listen port, the API key protecting the endpoints, and the upload size
// limit applied to workbook ingestion.
package server
