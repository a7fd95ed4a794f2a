// Package domain holds the entities exchanged with the backend platform
// services and the closed enumerations they carry.
//
// These types are wire shapes, not business objects: the facade never
// interprets them beyond validation of inbound payloads. All enums
// serialize by symbolic name. Types that can arrive as a request body
// implement Validate so the codec can reject structurally valid JSON
// that is semantically incomplete.
package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// validate is the single validator instance shared by all payload
// types. validator caches struct metadata internally, so reuse matters.
var validate = validator.New()

// Dealer is a service location a customer can book appointments at.
type Dealer struct {
	DealerID  string    `json:"dealerId"`
	Name      string    `json:"name" validate:"required"`
	Address   string    `json:"address" validate:"required"`
	City      string    `json:"city" validate:"required"`
	StateCode StateCode `json:"stateCode"`
	ZipCode   string    `json:"zipCode" validate:"required"`
}

// Validate enforces the create-dealer payload contract. DealerID is
// assigned by the dealer service, so it must not be required here.
func (d *Dealer) Validate() error {
	if err := validate.Struct(d); err != nil {
		return err
	}
	if d.StateCode == StateCodeUnknown {
		return errors.New("stateCode is required")
	}
	return nil
}

// Timeslot is a bookable service window at a dealer. ServiceDateHour is
// the textual slot key used by the timeslot service ("2024-01-15-09").
type Timeslot struct {
	DealerID        string `json:"dealerId" validate:"required"`
	ServiceDateHour string `json:"serviceDateHour" validate:"required"`
	Capacity        int    `json:"capacity" validate:"required,min=1"`
}

func (t *Timeslot) Validate() error {
	return validate.Struct(t)
}

// Customer is the account record for a registered user.
type Customer struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Phone     string `json:"phone" validate:"required,e164"`
}

func (c *Customer) Validate() error {
	return validate.Struct(c)
}

// CustomerProvision is the admin payload that creates both the identity
// account and the customer record in one orchestrated flow.
type CustomerProvision struct {
	Username          string `json:"username" validate:"required"`
	FirstName         string `json:"firstName" validate:"required"`
	LastName          string `json:"lastName" validate:"required"`
	Phone             string `json:"phone" validate:"required,e164"`
	TemporaryPassword string `json:"temporaryPassword" validate:"required,min=8"`
}

func (p *CustomerProvision) Validate() error {
	return validate.Struct(p)
}

// Customer returns the customer record embedded in the provision.
func (p *CustomerProvision) Customer() *Customer {
	return &Customer{
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
	}
}

// Vehicle is a vehicle known to the fleet.
type Vehicle struct {
	VIN   string `json:"vin" validate:"required,len=17"`
	Make  string `json:"make" validate:"required"`
	Model string `json:"model" validate:"required"`
	Year  int    `json:"year" validate:"required,min=1980"`
	Color string `json:"color"`
}

func (v *Vehicle) Validate() error {
	return validate.Struct(v)
}

// RegistrationKey identifies a customer/vehicle pairing.
type RegistrationKey struct {
	Username string `json:"username"`
	VIN      string `json:"vin"`
}

// Registration links a customer to a vehicle they may operate.
type Registration struct {
	Username        string             `json:"username" validate:"required"`
	VIN             string             `json:"vin" validate:"required,len=17"`
	Status          RegistrationStatus `json:"status"`
	CreateTimestamp int64              `json:"createTimestamp"`
}

func (r *Registration) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}
	if r.Status == RegistrationStatusUnknown {
		return errors.New("status is required")
	}
	return nil
}

// Key returns the registration's identifying pair.
func (r *Registration) Key() RegistrationKey {
	return RegistrationKey{Username: r.Username, VIN: r.VIN}
}

// Event is a single telemetry record reported by a vehicle. Timestamp
// is epoch milliseconds and doubles as the event's identifier within a
// VIN. The VIN field is always overwritten from the authenticated
// vehicle channel before the event service is called.
type Event struct {
	VIN         string    `json:"vin"`
	Timestamp   int64     `json:"timestamp" validate:"required,min=1"`
	EventCode   EventCode `json:"eventCode"`
	Description string    `json:"description"`
}

func (e *Event) Validate() error {
	if err := validate.Struct(e); err != nil {
		return err
	}
	if e.EventCode == EventCodeUnknown {
		return errors.New("eventCode is required")
	}
	return nil
}

// Appointment is a booked service visit. RegistrationKey.Username is
// always overwritten with the caller's authenticated identity before
// the orchestrator is called; only the VIN is taken from the body.
type Appointment struct {
	AppointmentID   string          `json:"appointmentId"`
	RegistrationKey RegistrationKey `json:"registrationKey"`
	DealerID        string          `json:"dealerId" validate:"required"`
	ServiceDateHour string          `json:"serviceDateHour" validate:"required"`
}

func (a *Appointment) Validate() error {
	if err := validate.Struct(a); err != nil {
		return err
	}
	if a.RegistrationKey.VIN == "" {
		return errors.New("registrationKey.vin is required")
	}
	return nil
}
