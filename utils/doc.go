// Package utils provides small shared helpers for bikeshare-traffic.
//
// It contains:
//   - Time-of-day label formatting
//   - Timestamp helpers for output metadata
package utils
