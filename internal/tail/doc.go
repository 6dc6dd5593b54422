// Package tail reads the bounded tail of a log file.
//
// Reads are one-shot open-read-close sequences with no locking; concurrent
// requests for the same file are independent. Memory use is bounded by the
// line ceiling, not the file size, so arbitrarily large logs are safe to
// tail.
package tail
