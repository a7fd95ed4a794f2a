package handler

import (
	"github.com/fleetlink/connectedcar/internal/orchestrator"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Health     *HealthHandler
	Admin      *AdminHandler
	Customer   *CustomerHandler
	Vehicle    *VehicleHandler
	Authorizer *AuthorizerHandler
}

// NewHandlers constructs the handler container from the application
// container, the platform service ports, and the orchestrators.
func NewHandlers(
	s *server.Server,
	services *service.Services,
	admin *orchestrator.AdminOrchestrator,
	customer *orchestrator.CustomerOrchestrator,
) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		Admin:      NewAdminHandler(s, services, admin),
		Customer:   NewCustomerHandler(s, services, customer),
		Vehicle:    NewVehicleHandler(s, services),
		Authorizer: NewAuthorizerHandler(s, services.Vehicle),
	}
}
