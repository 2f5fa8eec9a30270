// Package app wires application dependencies for the CLI and server.
//
// It builds the dial and cipher services from Config, either locally or as
// an HTTP client of a remote dialserver, and exposes them via the App struct
// for commands to use.
package app
