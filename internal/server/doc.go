// Package server exposes the log catalogs over HTTP.
//
// Routes: /system-logs and /service-logs each serve a catalog listing, a
// per-service description, and raw bounded log tails. /service-info serves
// the static self-description document. Log routes sit behind the permission
// gate; /service-info does not.
package server
