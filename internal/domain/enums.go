package domain

import "fmt"

// RegistrationStatus tracks the lifecycle of a customer/vehicle pairing.
// Like all enums in this package it serializes by symbolic name, and the
// Unknown sentinel exists only as a zero value, never as a parse result
// for bad input.
type RegistrationStatus int

const (
	RegistrationStatusUnknown RegistrationStatus = iota
	RegistrationStatusPending
	RegistrationStatusActive
	RegistrationStatusRemoved
)

var registrationStatusNames = [...]string{
	RegistrationStatusUnknown: "Unknown",
	RegistrationStatusPending: "Pending",
	RegistrationStatusActive:  "Active",
	RegistrationStatusRemoved: "Removed",
}

var registrationStatusValues = func() map[string]RegistrationStatus {
	m := make(map[string]RegistrationStatus, len(registrationStatusNames))
	for v, name := range registrationStatusNames {
		m[name] = RegistrationStatus(v)
	}
	return m
}()

func (s RegistrationStatus) String() string {
	if int(s) < 0 || int(s) >= len(registrationStatusNames) {
		return registrationStatusNames[RegistrationStatusUnknown]
	}
	return registrationStatusNames[s]
}

// ParseRegistrationStatus resolves a symbolic name to its status value.
func ParseRegistrationStatus(name string) (RegistrationStatus, bool) {
	status, ok := registrationStatusValues[name]
	return status, ok
}

func (s RegistrationStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *RegistrationStatus) UnmarshalText(text []byte) error {
	status, ok := ParseRegistrationStatus(string(text))
	if !ok {
		return fmt.Errorf("unknown registration status: %q", string(text))
	}
	*s = status
	return nil
}

// EventCode classifies a telemetry event reported by a vehicle.
type EventCode int

const (
	EventCodeUnknown EventCode = iota
	EventCodeAlert
	EventCodeDiagnostic
	EventCodeTelemetry
)

var eventCodeNames = [...]string{
	EventCodeUnknown:    "Unknown",
	EventCodeAlert:      "Alert",
	EventCodeDiagnostic: "Diagnostic",
	EventCodeTelemetry:  "Telemetry",
}

var eventCodeValues = func() map[string]EventCode {
	m := make(map[string]EventCode, len(eventCodeNames))
	for v, name := range eventCodeNames {
		m[name] = EventCode(v)
	}
	return m
}()

func (e EventCode) String() string {
	if int(e) < 0 || int(e) >= len(eventCodeNames) {
		return eventCodeNames[EventCodeUnknown]
	}
	return eventCodeNames[e]
}

// ParseEventCode resolves a symbolic name to its EventCode.
func ParseEventCode(name string) (EventCode, bool) {
	code, ok := eventCodeValues[name]
	return code, ok
}

func (e EventCode) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EventCode) UnmarshalText(text []byte) error {
	code, ok := ParseEventCode(string(text))
	if !ok {
		return fmt.Errorf("unknown event code: %q", string(text))
	}
	*e = code
	return nil
}
