package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/errs"
	"github.com/fleetlink/connectedcar/internal/gateway"
	"github.com/fleetlink/connectedcar/internal/server"
	"github.com/fleetlink/connectedcar/internal/service"
)

func newVehicleHandler(services *service.Services) *VehicleHandler {
	return NewVehicleHandler(&server.Server{}, services)
}

func vinHeaders() map[string]string {
	return map[string]string{gateway.HeaderXVin: testVin}
}

func TestVehicleCreateEvent(t *testing.T) {
	t.Run("records under the authorized vin, not the payload's", func(t *testing.T) {
		services, f := newFakeServices()
		var got *domain.Event
		f.event.createEvent = func(_ context.Context, event *domain.Event) error {
			got = event
			return nil
		}
		h := newVehicleHandler(services)

		req := &gateway.Request{
			Headers: vinHeaders(),
			Body: strptr(`{
				"vin": "5YJSA1E26MF000001",
				"timestamp": 1766000000000,
				"eventCode": "Alert"
			}`),
		}
		resp, err := h.CreateEvent(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "/vehicle/events/1766000000000", resp.Headers["Location"])
		require.NotNil(t, got)
		assert.Equal(t, testVin, got.VIN)
	})

	t.Run("fails without the vin header", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newVehicleHandler(services)

		req := &gateway.Request{Body: strptr(`{"timestamp": 1, "eventCode": "Alert"}`)}
		_, err := h.CreateEvent(context.Background(), req)

		var missing *errs.MissingParameter
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, gateway.HeaderXVin, missing.Name)
	})
}

func TestVehicleGetEvent(t *testing.T) {
	t.Run("a non-numeric timestamp is an invalid parameter", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newVehicleHandler(services)

		req := &gateway.Request{
			Headers:    vinHeaders(),
			PathParams: map[string]string{gateway.PathTimestamp: "yesterday"},
		}
		_, err := h.GetEvent(context.Background(), req)

		var invalid *errs.InvalidParameter
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, gateway.PathTimestamp, invalid.Name)
		assert.Equal(t, "yesterday", invalid.Value)
	})

	t.Run("a missing event is a 404", func(t *testing.T) {
		services, _ := newFakeServices()
		h := newVehicleHandler(services)

		req := &gateway.Request{
			Headers:    vinHeaders(),
			PathParams: map[string]string{gateway.PathTimestamp: "1766000000000"},
		}
		resp, err := h.GetEvent(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Empty(t, resp.Body)
	})

	t.Run("looks up by the authorized vin and the parsed timestamp", func(t *testing.T) {
		services, f := newFakeServices()
		f.event.getEvent = func(_ context.Context, vin string, timestamp int64) (*domain.Event, error) {
			assert.Equal(t, testVin, vin)
			assert.Equal(t, int64(1766000000000), timestamp)
			return &domain.Event{VIN: vin, Timestamp: timestamp, EventCode: domain.EventCodeAlert}, nil
		}
		h := newVehicleHandler(services)

		req := &gateway.Request{
			Headers:    vinHeaders(),
			PathParams: map[string]string{gateway.PathTimestamp: "1766000000000"},
		}
		resp, err := h.GetEvent(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Body, `"Alert"`)
	})
}

func TestVehicleGetEvents(t *testing.T) {
	t.Run("lists only the authorized vehicle's telemetry", func(t *testing.T) {
		services, f := newFakeServices()
		f.event.getEvents = func(_ context.Context, vin string) ([]domain.Event, error) {
			assert.Equal(t, testVin, vin)
			return []domain.Event{
				{VIN: vin, Timestamp: 1766000000000, EventCode: domain.EventCodeTelemetry},
				{VIN: vin, Timestamp: 1766000001000, EventCode: domain.EventCodeAlert},
			}, nil
		}
		h := newVehicleHandler(services)

		resp, err := h.GetEvents(context.Background(), &gateway.Request{Headers: vinHeaders()})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Body, `"Telemetry"`)
		assert.Contains(t, resp.Body, `"Alert"`)
	})
}
