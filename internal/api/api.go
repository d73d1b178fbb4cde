package api

import (
	"errors"
	"github.com/cortex-platform/console/internal/api/console"
	"github.com/cortex-platform/console/internal/clientstore"
	"github.com/cortex-platform/console/internal/config"
	"github.com/cortex-platform/console/internal/gateway"
	"net/http"
)

// Service represents the console API service
type Service struct {
	Config  *config.Config
	Store   clientstore.Driver
	console *console.Service
}

// Startup starts up the console API
func (service *Service) Startup(errs chan<- error) {
	consoleService := &console.Service{
		Config:  service.Config,
		Backend: gateway.New(service.Config.BackendURL),
		Store:   service.Store,
	}
	service.console = consoleService
	go func() {
		if err := consoleService.Startup(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()
}

// Shutdown shuts down the console API
func (service *Service) Shutdown() {
	if service.console != nil {
		service.console.Shutdown()
		service.console = nil
	}
}
