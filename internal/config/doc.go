// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config.yaml file. It provides
// type-safe access to the server, database and authentication settings while
// keeping configuration details separate from business logic.
package config
