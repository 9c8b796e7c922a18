// Package orchestrator wires the form config, label catalog, submission sink
// and placemark viewer, providing dependency injection friendly helpers for
// consumers that prefer a single entry point.
package orchestrator
