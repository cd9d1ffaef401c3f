// Package config provides engine configuration loading and type-safe
// value extraction.
//
// Config wraps a plain map so settings can come from YAML or JSON
// files, or be built in code. Accessors return a default when a key
// is missing or has the wrong type; validation of setting values is
// the engine's job.
//
// Recognized engine settings:
//
//	parse_mode:      "lax" or "strict"
//	max_chain_depth: positive integer
//	cache_path:      SQLite file path for the render cache
package config
