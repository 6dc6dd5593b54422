// Command logbay is the CLI client for the logbay daemon: it lists log
// sources, shows one service's logs, and prints bounded log tails over the
// daemon's HTTP API.
package main
