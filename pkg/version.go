// Package ctypes holds build information of the ctypes tools.
package ctypes

var (
	// Version of ctypes, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
