package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetlink/connectedcar/internal/handler"
)

// registerCustomerRoutes wires the customer channel. Every operation
// takes the caller's identity from the forwarded claims; anonymous
// requests fail inside the handlers.
func registerCustomerRoutes(r *echo.Echo, h *handler.Handlers) {
	customer := r.Group("/customer")

	customer.GET("/profile", handler.Envelope(h.Customer.GetCustomer))
	customer.PUT("/profile", handler.Envelope(h.Customer.UpdateCustomer))

	customer.POST("/appointments", handler.Envelope(h.Customer.CreateAppointment))
	customer.GET("/appointments/:appointmentId", handler.Envelope(h.Customer.GetAppointment))
	customer.DELETE("/appointments/:appointmentId", handler.Envelope(h.Customer.DeleteAppointment))

	customer.GET("/registrations", handler.Envelope(h.Customer.GetRegistrations))
	customer.GET("/vehicles/:vin/appointments", handler.Envelope(h.Customer.GetAppointments))
	customer.GET("/vehicles/:vin", handler.Envelope(h.Customer.GetVehicle))
	customer.GET("/vehicles/:vin/events", handler.Envelope(h.Customer.GetEvents))

	customer.GET("/dealers", handler.Envelope(h.Customer.GetDealers))
	customer.GET("/dealers/:dealerId/timeslots", handler.Envelope(h.Customer.GetTimeslots))
}
