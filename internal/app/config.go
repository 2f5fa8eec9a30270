package app

import (
	"net/http"

	"go.uber.org/zap"

	"shiftdial/internal/domain"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Indexing domain.Indexing // default schedule counter for local ciphers
	Remote   string          // dialserver base URL; empty runs locally
	HTTP     *http.Client    // optional; defaults to http.DefaultClient
	Logger   *zap.Logger     // optional; defaults to a no-op logger
}
