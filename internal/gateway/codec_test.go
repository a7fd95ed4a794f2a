package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetlink/connectedcar/internal/domain"
	"github.com/fleetlink/connectedcar/internal/errs"
)

func TestCodecEncode(t *testing.T) {
	codec := NewCodec()

	t.Run("pretty-prints with enum names", func(t *testing.T) {
		dealer := domain.Dealer{
			DealerID:  "d-1",
			Name:      "Rainier Motors",
			Address:   "500 Pine St",
			City:      "Seattle",
			StateCode: domain.StateCodeWA,
			ZipCode:   "98101",
		}

		body, err := codec.Encode(&dealer)

		require.NoError(t, err)
		assert.Contains(t, body, "\n  \"dealerId\": \"d-1\"")
		assert.Contains(t, body, `"stateCode": "WA"`)
		assert.False(t, strings.HasSuffix(body, "\n"))
	})

	t.Run("escapes HTML-significant characters", func(t *testing.T) {
		event := domain.Event{
			VIN:         "1HGBH41JXMN109186",
			Timestamp:   1700000000000,
			EventCode:   domain.EventCodeAlert,
			Description: "<script>alert(1)</script>",
		}

		body, err := codec.Encode(&event)

		require.NoError(t, err)
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, `\u003cscript\u003e`)
	})
}

func TestCodecDecode(t *testing.T) {
	codec := NewCodec()

	t.Run("round-trips an encoded value", func(t *testing.T) {
		original := domain.Vehicle{
			VIN:   "1HGBH41JXMN109186",
			Make:  "Voltaic",
			Model: "S5",
			Year:  2024,
			Color: "blue",
		}
		body, err := codec.Encode(&original)
		require.NoError(t, err)

		var decoded domain.Vehicle
		require.NoError(t, codec.Decode(&body, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("nil body fails as deserialization", func(t *testing.T) {
		var dst domain.Vehicle
		err := codec.Decode(nil, &dst)

		var deser *errs.Deserialization
		require.ErrorAs(t, err, &deser)
	})

	t.Run("blank body fails as deserialization", func(t *testing.T) {
		body := "   "
		var dst domain.Vehicle
		err := codec.Decode(&body, &dst)

		var deser *errs.Deserialization
		require.ErrorAs(t, err, &deser)
	})

	t.Run("malformed JSON fails as deserialization", func(t *testing.T) {
		body := `{"vin": `
		var dst domain.Vehicle
		err := codec.Decode(&body, &dst)

		var deser *errs.Deserialization
		require.ErrorAs(t, err, &deser)
	})

	t.Run("unknown enum name fails instead of degrading to Unknown", func(t *testing.T) {
		body := `{"username":"jsmith","vin":"1HGBH41JXMN109186","status":"Archived"}`
		var dst domain.Registration
		err := codec.Decode(&body, &dst)

		var deser *errs.Deserialization
		require.ErrorAs(t, err, &deser)
	})

	t.Run("structurally valid but semantically incomplete body fails", func(t *testing.T) {
		body := `{"vin":"too-short","make":"Voltaic","model":"S5","year":2024}`
		var dst domain.Vehicle
		err := codec.Decode(&body, &dst)

		var deser *errs.Deserialization
		require.ErrorAs(t, err, &deser)
	})
}
