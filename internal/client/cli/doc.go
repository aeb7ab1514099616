// Package cli provides the interactive Mac reservation command-line client.
//
// The flow follows the front-desk menu: prompt for credentials, then loop
// over numbered commands (reserve, my reservations, return, exit) plus a few
// read-only extras. In remote mode a background watcher pings the server
// and shows online/offline in the prompt.
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
package cli
