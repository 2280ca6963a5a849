// Package formatter wraps and serializes traffic views.
//
// This package is organized into:
// - wrapper.go: response wrapping and station ranking
// - json.go: JSON serialization for the binding layer
// - text.go: aligned text table for terminals
package formatter
