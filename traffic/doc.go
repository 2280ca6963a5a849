// Package traffic turns bucketed trips into per-station traffic views.
//
// ComputeStationTraffic is the pure aggregation step. Dataset is the context object built once
// after loading; Query runs window selection, aggregation and radius/flow scaling for one slider
// value and returns fresh values every time.
package traffic
