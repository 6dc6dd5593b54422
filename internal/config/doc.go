// Package config loads, normalizes, and validates logbay configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment overrides such as
// LOGBAY_BASE_URL and LOGBAY_SERVICES_FILE. Validation failures are fatal at
// startup: the daemon never serves with an unusable configuration.
package config
