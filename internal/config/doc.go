// Package config resolves the search request from the command line and an
// environment snapshot, and loads ambient settings (logging) from an optional
// YAML file and environment variables with precedence: Environment variables >
// YAML config > Defaults. The environment is always passed in explicitly so
// resolution is deterministic for a given input.
package config
