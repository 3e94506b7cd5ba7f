// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines
// the settings it reads: the listen port, the origin allowed by the CORS
// middleware and the request body limit applied to uploads.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server
