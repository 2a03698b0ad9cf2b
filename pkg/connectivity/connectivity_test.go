package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/planequery/fleetsync/pkg/catalogs"
	"github.com/planequery/fleetsync/pkg/connectivity"
)

func TestTier(t *testing.T) {
	t.Run("no wifi flag wins", func(t *testing.T) {
		assert.Equal(t, catalogs.WiFiNone, connectivity.Tier(true, false))
		// Contradictory flags: no-wifi still wins
		assert.Equal(t, catalogs.WiFiNone, connectivity.Tier(true, true))
	})

	t.Run("high speed flag selects high speed", func(t *testing.T) {
		assert.Equal(t, catalogs.WiFiHighSpeed, connectivity.Tier(false, true))
	})

	t.Run("defaults to low speed", func(t *testing.T) {
		assert.Equal(t, catalogs.WiFiLowSpeed, connectivity.Tier(false, false))
	})
}

func TestProvider(t *testing.T) {
	t.Run("known providers map to canonical names", func(t *testing.T) {
		name, warnings := connectivity.Provider("gogo")
		assert.Equal(t, "Gogo", name)
		assert.Empty(t, warnings)

		name, _ = connectivity.Provider("PANASONIC")
		assert.Equal(t, "Panasonic Avionics", name)

		name, _ = connectivity.Provider("Global Eagle")
		assert.Equal(t, "Anuvu", name)
	})

	t.Run("unmapped provider passes through with warning", func(t *testing.T) {
		name, warnings := connectivity.Provider("SkyLink Aero")
		assert.Equal(t, "SkyLink Aero", name)
		assert.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "unmapped connectivity provider")
	})

	t.Run("empty provider is not a warning", func(t *testing.T) {
		name, warnings := connectivity.Provider("  ")
		assert.Empty(t, name)
		assert.Empty(t, warnings)
	})
}
