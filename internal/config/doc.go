// Package config loads the settings of the sync server and the client agent.
//
// Values come from the environment, then command-line flags, then an
// optional JSON file; each non-zero field of a later source overrides
// the earlier value. See [GetStructuredConfig] for the server and
// [GetClientConfig] for the agent.
package config
