// Package middleware groups the HTTP middleware of the service mode.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or bearer token).
//   - rayid: assigns every request a ray id, stored in locals as "ray_id"
//     (read by logger.WithRayID) and echoed in the X-Ray-ID response header.
//
// rayid must be registered first so every later log line carries the id.
package middleware
