package domain

import "errors"

// CustomerPatch is a partial update to a customer record. Nil pointer
// fields are left untouched by the customer service. Username is never
// taken from the request body; the handler stamps it with the caller's
// authenticated identity.
type CustomerPatch struct {
	Username  string  `json:"username"`
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Phone     *string `json:"phone" validate:"omitempty,e164"`
}

// Validate requires at least one field to be patched. The username is
// stamped after decoding, so it is deliberately not checked here.
func (p *CustomerPatch) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.FirstName == nil && p.LastName == nil && p.Phone == nil {
		return errors.New("patch must set at least one field")
	}
	return nil
}

// RegistrationPatch moves a registration to a new lifecycle status.
type RegistrationPatch struct {
	Username string             `json:"username" validate:"required"`
	VIN      string             `json:"vin" validate:"required,len=17"`
	Status   RegistrationStatus `json:"status"`
}

func (p *RegistrationPatch) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}
	if p.Status == RegistrationStatusUnknown {
		return errors.New("status is required")
	}
	return nil
}
