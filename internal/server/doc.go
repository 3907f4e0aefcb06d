// Package server provides a standalone metrics endpoint.
//
// The metrics server exposes Prometheus metrics collected by the
// instrumentation package on a dedicated port, separate from any
// traffic the embedding application serves itself.
package server
