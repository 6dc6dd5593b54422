// Package catalog builds and holds the immutable log catalogs served by the
// daemon.
//
// Two catalogs exist: a fixed system catalog (nginx, redis) with hand-authored
// absolute paths, and a service catalog derived once at startup from the
// node's service descriptors plus a filesystem convention (one directory per
// artifact under a configured root). Catalogs are never refreshed; a log file
// appearing on disk mid-run becomes visible only after a restart.
//
// Lookups are exact and case-sensitive. A miss is a normal outcome reported
// through an ok bool, never a panic.
package catalog
