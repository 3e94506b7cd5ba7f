// Package health exposes a reachability probe for the configured bucket.
//
// # HTTP Endpoints
//
//   - GET /health : 200 when the bucket answers and exists, 503 otherwise.
package health
