package app

import "shiftdial/internal/domain"

// App bundles the services commands talk to.
type App struct {
	Ciphers domain.CipherService
	Dials   domain.DialService
	Remote  bool
}

func New(ciphers domain.CipherService, dials domain.DialService, remote bool) *App {
	return &App{
		Ciphers: ciphers,
		Dials:   dials,
		Remote:  remote,
	}
}
