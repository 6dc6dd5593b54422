// Package logging constructs the slog loggers used across the daemon and
// CLI. Console output renders compact "TIMESTAMP LEVEL component: message
// key=value" lines; JSON output uses ts/level/msg keys for ingestion.
package logging
