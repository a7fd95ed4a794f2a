// Package orchestrator composes multiple service ports into the
// multi-step operations the handlers expose as a single call.
package orchestrator

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/service"
)

// AdminOrchestrator runs the administrative flows that span the
// identity platform and the customer service.
type AdminOrchestrator struct {
	users     service.UserService
	customers service.CustomerService
	logger    *zerolog.Logger
}

func NewAdminOrchestrator(users service.UserService, customers service.CustomerService, logger *zerolog.Logger) *AdminOrchestrator {
	return &AdminOrchestrator{
		users:     users,
		customers: customers,
		logger:    logger,
	}
}

// ProvisionCustomer creates the login account first and the customer
// profile second. The steps are strictly sequential: no profile is
// written when account creation fails. A failure after the account
// exists is reported as-is; reconciliation belongs to the platform, not
// this facade.
func (o *AdminOrchestrator) ProvisionCustomer(ctx context.Context, provision *domain.CustomerProvision) error {
	if err := o.users.CreateUser(ctx, provision.Username, provision.TemporaryPassword); err != nil {
		return errors.Wrap(err, "create user account")
	}
	o.logger.Info().Str("username", provision.Username).Msg("user account created")

	if err := o.customers.CreateCustomer(ctx, provision.Customer()); err != nil {
		return errors.Wrap(err, "create customer profile")
	}
	return nil
}
