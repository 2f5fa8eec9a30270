// Package main runs the shiftdial HTTP API server.
//
// It serves the dial quantizer and the cyclic substitution cipher as JSON
// endpoints (see internal/server for the API). The server is stateless: dial
// positions live in the client and arrive with each request.
//
// Flags
//
//	--config   YAML config file (default ~/.shiftdial/config.yaml)
//	--addr     listen address, overrides server.addr
//
// The process shuts down gracefully on SIGINT or SIGTERM, waiting up to
// server.shutdown_timeout for in-flight requests.
package main
