package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionAllows(t *testing.T) {
	const vin = "1HGBH41JXMN109186"

	t.Run("allow grants exactly the presented vin", func(t *testing.T) {
		d := AllowVehicle(vin)

		assert.True(t, d.Allows(vin))
		assert.False(t, d.Allows("5YJSA1E26MF000001"))
	})

	t.Run("deny never grants", func(t *testing.T) {
		assert.False(t, DenyVehicle(vin).Allows(vin))
	})

	t.Run("no decision never grants", func(t *testing.T) {
		var d *Decision
		assert.False(t, d.Allows(vin))
	})

	t.Run("a tampered resource scope does not grant", func(t *testing.T) {
		d := AllowVehicle(vin)
		d.Resource = VehicleResource("5YJSA1E26MF000001")

		assert.False(t, d.Allows(vin))
	})
}

func TestEffectSerialization(t *testing.T) {
	t.Run("serializes by name", func(t *testing.T) {
		raw, err := json.Marshal(AllowVehicle("1HGBH41JXMN109186"))

		require.NoError(t, err)
		assert.Contains(t, string(raw), `"effect":"Allow"`)
	})

	t.Run("round-trips both effects", func(t *testing.T) {
		for _, effect := range []Effect{EffectAllow, EffectDeny} {
			raw, err := effect.MarshalText()
			require.NoError(t, err)

			var back Effect
			require.NoError(t, back.UnmarshalText(raw))
			assert.Equal(t, effect, back)
		}
	})

	t.Run("rejects an unknown effect name", func(t *testing.T) {
		var e Effect
		assert.Error(t, e.UnmarshalText([]byte("Maybe")))
	})
}
