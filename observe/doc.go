// Package observe provides observability primitives for frame rendering.
//
// It is a pure instrumentation library: no rendering, no input, no I/O
// beyond exporter setup. Consumers wire the observer into the engine
// loop, which reports one measurement per rendered frame.
package observe
