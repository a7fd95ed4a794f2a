package gateway

import "fmt"

// Effect is the outcome of an access decision, serialized by name like
// every other enum.
type Effect int

const (
	EffectDeny Effect = iota
	EffectAllow
)

var effectNames = [...]string{
	EffectDeny:  "Deny",
	EffectAllow: "Allow",
}

func (e Effect) String() string {
	if int(e) < 0 || int(e) >= len(effectNames) {
		return effectNames[EffectDeny]
	}
	return effectNames[e]
}

func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Effect) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Allow":
		*e = EffectAllow
	case "Deny":
		*e = EffectDeny
	default:
		return fmt.Errorf("unknown effect: %q", string(text))
	}
	return nil
}

// Decision is a scoped allow/deny access decision produced once per
// authorization call by the vehicle authorizer and consumed immediately
// by the transport boundary. It is never persisted and never mutated.
//
// A nil *Decision means "no decision": the authorizer could not even
// evaluate the credentials. That is distinct from an explicit Deny.
type Decision struct {
	Principal string `json:"principal"`
	Effect    Effect `json:"effect"`
	Resource  string `json:"resource"`
}

// VehicleResource is the canonical resource scope for all vehicle
// channel operations addressable under one VIN.
func VehicleResource(vin string) string {
	return "vehicle:" + vin
}

// AllowVehicle builds the decision granting the vehicle channel for
// exactly the presented VIN and nothing else.
func AllowVehicle(vin string) *Decision {
	return &Decision{Principal: vin, Effect: EffectAllow, Resource: VehicleResource(vin)}
}

// DenyVehicle builds the explicit deny decision for the presented VIN.
func DenyVehicle(vin string) *Decision {
	return &Decision{Principal: vin, Effect: EffectDeny, Resource: VehicleResource(vin)}
}

// Allows reports whether this decision grants vehicle-channel access
// for the given VIN. It is false for a nil decision, a deny, and any
// decision scoped to a different vehicle.
func (d *Decision) Allows(vin string) bool {
	return d != nil &&
		d.Effect == EffectAllow &&
		d.Principal == vin &&
		d.Resource == VehicleResource(vin)
}
