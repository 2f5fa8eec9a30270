// Package server exposes the dial quantizer and cipher over a JSON HTTP API.
//
// HTTP API
//
//	POST /v1/quantize  {"angle": -10}
//	    Return the DialReading for a raw angle in degrees.
//
//	POST /v1/override  {"value": -1}
//	    Wrap a numeric dial entry into [0,26) and return its DialReading.
//
//	POST /v1/cipher    {"text": "...", "dials": [{"shift": 3, "active": true}], "direction": "encode"}
//	    Apply the key schedule of the active dials and return a CipherResult.
//
//	GET /healthz
//	    Liveness probe.
//
// Behaviour
//
//   - The server holds no state; handlers are safe for concurrent use.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - An access log records method, path, remote, status, bytes, duration
//     and request id for each request. The id is taken from X-Request-ID or
//     generated, and echoed back.
package server
