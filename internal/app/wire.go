package app

import (
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"shiftdial/internal/logging"
	"shiftdial/internal/remote"
	ciphersvc "shiftdial/internal/services/cipher"
	dialsvc "shiftdial/internal/services/dial"
)

// Wire constructs the dependency graph from cfg.
func Wire(cfg Config) (*App, error) {
	logger := logging.OrNop(cfg.Logger)

	if cfg.Remote == "" {
		logger.Debug("using local services", zap.Stringer("indexing", cfg.Indexing))
		return New(ciphersvc.New(logger, cfg.Indexing), dialsvc.New(logger), false), nil
	}

	u, err := url.Parse(cfg.Remote)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid remote URL %q", cfg.Remote)
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	rc := remote.NewHTTP(cfg.Remote, httpClient)
	logger.Debug("using remote services", zap.String("remote", rc.Base))
	return New(rc, rc, true), nil
}
