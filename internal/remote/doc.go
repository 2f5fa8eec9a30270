// Package remote provides an HTTP implementation of the domain.CipherService
// and domain.DialService interfaces backed by a dialserver.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors carrying the HTTP
// method, path, status text and the server's error message. Server-side
// validation failures wrap the matching domain sentinel errors so callers can
// test them with errors.Is.
package remote
