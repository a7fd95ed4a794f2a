package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/handler"
)

// registerAdminRoutes wires the back-office channel. Authentication for
// this channel is enforced upstream of the facade, so these routes
// carry no extra guard here.
func registerAdminRoutes(r *echo.Echo, h *handler.Handlers) {
	admin := r.Group("/admin")

	admin.POST("/dealers", handler.Envelope(h.Admin.CreateDealer))
	admin.GET("/dealers", handler.Envelope(h.Admin.GetDealers))
	admin.GET("/dealers/:dealerId", handler.Envelope(h.Admin.GetDealer))

	admin.POST("/timeslots", handler.Envelope(h.Admin.CreateTimeslot))
	admin.GET("/dealers/:dealerId/timeslots", handler.Envelope(h.Admin.GetTimeslots))
	admin.GET("/dealers/:dealerId/timeslots/:serviceDateHour", handler.Envelope(h.Admin.GetTimeslot))

	admin.POST("/customers", handler.Envelope(h.Admin.CreateCustomer))
	admin.GET("/customers", handler.Envelope(h.Admin.GetCustomers))
	admin.GET("/customers/:username", handler.Envelope(h.Admin.GetCustomer))

	admin.POST("/registrations", handler.Envelope(h.Admin.CreateRegistration))
	admin.PUT("/registrations", handler.Envelope(h.Admin.UpdateRegistration))
	admin.GET("/customers/:username/registrations", handler.Envelope(h.Admin.GetCustomerRegistrations))
	admin.GET("/customers/:username/registrations/:vin", handler.Envelope(h.Admin.GetRegistration))

	admin.POST("/vehicles", handler.Envelope(h.Admin.CreateVehicle))
	admin.GET("/vehicles/:vin", handler.Envelope(h.Admin.GetVehicle))
	admin.GET("/vehicles/:vin/registrations", handler.Envelope(h.Admin.GetVehicleRegistrations))
}
