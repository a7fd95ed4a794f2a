package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/errs"
	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/orchestrator"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
)

func strptr(s string) *string { return &s }

func newAdminHandler(services *service.Services) *AdminHandler {
	nop := zerolog.Nop()
	o := orchestrator.NewAdminOrchestrator(services.User, services.Customer, &nop)
	return NewAdminHandler(&server.Server{}, services, o)
}

func TestAdminCreateDealer(t *testing.T) {
	t.Run("reports the new dealer's canonical path", func(t *testing.T) {
		services, f := newFakeServices()
		f.dealer.createDealer = func(_ context.Context, dealer *domain.Dealer) (string, error) {
			assert.Equal(t, "Rainier Motors", dealer.Name)
			return "d-42", nil
		}
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"name": "Rainier Motors",
			"address": "500 Pine St",
			"city": "Seattle",
			"stateCode": "WA",
			"zipCode": "98101"
		}`)}

		resp, err := h.CreateDealer(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/admin/dealers/d-42", resp.Headers["Location"])
		assert.Empty(t, resp.Body)
	})

	t.Run("a missing body surfaces as a deserialization failure", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		_, err := h.CreateDealer(context.Background(), &gateway.Request{})

		var deser *errs.Deserialization
		require.ErrorAs(t, err, &deser)
	})
}

func TestAdminGetDealers(t *testing.T) {
	t.Run("requires the stateCode query parameter", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		_, err := h.GetDealers(context.Background(), &gateway.Request{})

		var missing *errs.MissingParameter
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, gateway.QueryStateCode, missing.Name)
	})

	t.Run("returns the jurisdiction listing as JSON", func(t *testing.T) {
		services, f := newFakeServices()
		f.dealer.getDealers = func(_ context.Context, stateCode domain.StateCode) ([]domain.Dealer, error) {
			assert.Equal(t, domain.StateCodeTX, stateCode)
			return []domain.Dealer{{DealerID: "d-1", Name: "Lone Star Autos"}}, nil
		}
		h := newAdminHandler(services)

		req := &gateway.Request{QueryParams: map[string]string{gateway.QueryStateCode: "TX"}}
		resp, err := h.GetDealers(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, gateway.ContentTypeJSON, resp.Headers["Content-Type"])
		assert.Contains(t, resp.Body, "Lone Star Autos")
	})

	t.Run("a jurisdiction with no dealers is the empty array, not null", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{QueryParams: map[string]string{gateway.QueryStateCode: "WY"}}
		resp, err := h.GetDealers(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "[]", resp.Body)
	})
}

func TestAdminGetDealer(t *testing.T) {
	t.Run("an unknown dealer is a bare 404", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{PathParams: map[string]string{gateway.PathDealerID: "d-404"}}
		resp, err := h.GetDealer(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, resp.Body)
		assert.Nil(t, resp.Headers)
	})
}

func TestAdminCreateTimeslot(t *testing.T) {
	t.Run("the location combines dealer and slot key", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"dealerId": "d-1",
			"serviceDateHour": "2026-09-15-09",
			"capacity": 4
		}`)}

		resp, err := h.CreateTimeslot(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/admin/dealers/d-1/timeslots/2026-09-15-09", resp.Headers["Location"])
	})

	t.Run("zero capacity fails validation", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"dealerId": "d-1",
			"serviceDateHour": "2026-09-15-09",
			"capacity": 0
		}`)}

		_, err := h.CreateTimeslot(context.Background(), req)

		var deser *errs.Deserialization
		require.ErrorAs(t, err, &deser)
	})
}

func TestAdminGetTimeslots(t *testing.T) {
	t.Run("both window bounds are required, no defaulting", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{
			PathParams:  map[string]string{gateway.PathDealerID: "d-1"},
			QueryParams: map[string]string{gateway.QueryStartDate: "2026-09-01"},
		}

		_, err := h.GetTimeslots(context.Background(), req)

		var missing *errs.MissingParameter
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, gateway.QueryEndDate, missing.Name)
	})
}

func TestAdminCreateCustomer(t *testing.T) {
	t.Run("provisions the account before the profile", func(t *testing.T) {
		var steps []string

		services, f := newFakeServices()
		f.user.createUser = func(_ context.Context, username, temporaryPassword string) error {
			assert.Equal(t, "jsmith", username)
			assert.Equal(t, "first-login-1", temporaryPassword)
			steps = append(steps, "user")
			return nil
		}
		f.customer.createCustomer = func(_ context.Context, customer *domain.Customer) error {
			assert.Equal(t, "jsmith", customer.Username)
			steps = append(steps, "customer")
			return nil
		}
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"username": "jsmith",
			"firstName": "Jordan",
			"lastName": "Smith",
			"phone": "+12065550100",
			"temporaryPassword": "first-login-1"
		}`)}

		resp, err := h.CreateCustomer(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, []string{"user", "customer"}, steps)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/admin/customers/jsmith", resp.Headers["Location"])
	})

	t.Run("no profile is written when account creation fails", func(t *testing.T) {
		services, f := newFakeServices()
		f.user.createUser = func(context.Context, string, string) error {
			return errors.New("identity platform unavailable")
		}
		profileWritten := false
		f.customer.createCustomer = func(context.Context, *domain.Customer) error {
			profileWritten = true
			return nil
		}
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"username": "jsmith",
			"firstName": "Jordan",
			"lastName": "Smith",
			"phone": "+12065550100",
			"temporaryPassword": "first-login-1"
		}`)}

		_, err := h.CreateCustomer(context.Background(), req)

		require.Error(t, err)
		assert.False(t, profileWritten)
	})
}

func TestAdminRegistrations(t *testing.T) {
	t.Run("create reports the registration's canonical path", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"username": "jsmith",
			"vin": "1HGBH41JXMN109186",
			"status": "Pending"
		}`)}

		resp, err := h.CreateRegistration(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/admin/customers/jsmith/registrations/1HGBH41JXMN109186", resp.Headers["Location"])
	})

	t.Run("update returns a bare 200", func(t *testing.T) {
		services, f := newFakeServices()
		var got *domain.RegistrationPatch
		f.registration.updateRegistration = func(_ context.Context, patch *domain.RegistrationPatch) error {
			got = patch
			return nil
		}
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"username": "jsmith",
			"vin": "1HGBH41JXMN109186",
			"status": "Removed"
		}`)}

		resp, err := h.UpdateRegistration(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Body)
		require.NotNil(t, got)
		assert.Equal(t, domain.RegistrationStatusRemoved, got.Status)
	})

	t.Run("a missing registration is a 404", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{PathParams: map[string]string{
			gateway.PathUsername: "jsmith",
			gateway.PathVin:      "1HGBH41JXMN109186",
		}}
		resp, err := h.GetRegistration(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestAdminCreateVehicle(t *testing.T) {
	t.Run("the location carries the vin", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newAdminHandler(services)

		req := &gateway.Request{Body: strptr(`{
			"vin": "1HGBH41JXMN109186",
			"make": "Voltaic",
			"model": "S5",
			"year": 2024
		}`)}

		resp, err := h.CreateVehicle(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/admin/vehicles/1HGBH41JXMN109186", resp.Headers["Location"])
	})
}

func TestAdminFailuresPropagate(t *testing.T) {
	t.Run("a collaborator failure is returned, not translated here", func(t *testing.T) {
		services, f := newFakeServices()
		f.dealer.getDealer = func(context.Context, string) (*domain.Dealer, error) {
			return nil, errors.New("dealer service unreachable")
		}
		h := newAdminHandler(services)

		req := &gateway.Request{PathParams: map[string]string{gateway.PathDealerID: "d-1"}}
		_, err := h.GetDealer(context.Background(), req)

		require.Error(t, err)
		assert.False(t, errs.IsRequestError(err))
	})
}
