// Package metrics exports drain-cycle statistics in the Prometheus format.
// The Recorder is an observer; nothing listens on the network, snapshots are
// written to a node_exporter textfile with WriteTextfile.
package metrics
