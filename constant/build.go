// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// Build metadata, overridden at link time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
