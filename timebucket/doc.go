// Package timebucket indexes trips by minute-of-day and answers circular time-window queries.
//
// Two arrays of 1440 buckets are built once: departures keyed by the start minute and arrivals
// keyed by the end minute. A window query then touches at most 120 buckets instead of scanning
// every trip, which keeps per-slider-movement queries cheap.
//
// Windows are half-open: for a center c the selected minutes are [c-60, c+60) taken modulo 1440,
// so the window wraps across midnight. NoFilter selects every bucket.
package timebucket
