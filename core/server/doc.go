// Package server holds the HTTP server configuration for service mode.
//
// The serve command exposes the synced collections and a sync trigger over HTTP.
// This package only defines the settings; the command wires them into Fiber.
//
// # Configuration
//
// The Config struct defines the HTTP port, the API key protecting every route, and a
// read-only switch that disables the trigger endpoint.
package server
