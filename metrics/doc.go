// Package metrics exports engine call and handle metrics to Prometheus.
//
// A Collector is attached to a forwarder with forward.WithHook and to a
// handle table with Table.Subscribe.
package metrics
