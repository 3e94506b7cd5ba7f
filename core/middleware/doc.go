// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - CORS: Applies the fixed cross-origin policy of the API (single configured
//     origin, GET/POST/OPTIONS, credentials allowed) and answers preflight
//     OPTIONS requests.
//
// These middleware components are registered globally in the start command.
package middleware
