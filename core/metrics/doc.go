// Package metrics exposes Prometheus metrics for the HTTP API and the object store.
//
// A Metrics value owns its own registry (nothing is registered globally),
// a Fiber middleware recording request counts and latencies per route, and
// StorageMetrics which the storage.Bucket reports every backend call to.
package metrics
