// Package config loads engine configuration from EMBER_* environment
// variables.
//
// Every knob has a sensible default, so applications can ignore this
// package entirely; Load exists for operators who want to retune an
// installed binary (frame rate, log destination, telemetry exporters)
// without rebuilding it.
package config
