// Package services reads the node's service descriptor file.
//
// The descriptor file is a JSON array maintained by the deployment tooling;
// logbay consumes it once at startup to learn which service artifacts exist
// on this node. Entries flagged as disabled are excluded from catalog
// construction entirely.
package services
