package driver_test

import (
	"testing"
	"time"

	"fleet/internal/core/domain/model/driver"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidLocation(t *testing.T, lat, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng, "")
	require.NoError(t, err)
	return loc
}

func strPtr(s string) *string { return &s }

func TestNewDriver(t *testing.T) {
	t.Run("should create available driver without location", func(t *testing.T) {
		d, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho", TeamID: strPtr("T001")})

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "D001", d.ID())
		assert.Equal(t, "Sipho", d.Name())
		assert.Equal(t, driver.StatusAvailable, d.Status())
		assert.Equal(t, driver.VehicleCar, d.Profile().VehicleType)
		assert.Equal(t, "T001", *d.TeamID())
		_, ok := d.Location()
		assert.False(t, ok)
	})

	t.Run("should report missing id and name together", func(t *testing.T) {
		d, err := driver.NewDriver("", driver.Profile{})

		require.Error(t, err)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "driverId")
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should reject unknown vehicle type", func(t *testing.T) {
		_, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho", VehicleType: "Hovercraft"})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriver_UpdateLocation(t *testing.T) {
	d, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho"})
	require.NoError(t, err)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should accept first report", func(t *testing.T) {
		changed, err := d.UpdateLocation(createValidLocation(t, -26.10, 28.05), now)

		require.NoError(t, err)
		assert.True(t, changed)
		loc, ok := d.Location()
		require.True(t, ok)
		assert.InDelta(t, -26.10, loc.Lat(), 1e-9)
		assert.Equal(t, now, d.LocationUpdatedAt())
	})

	t.Run("should ignore stale report", func(t *testing.T) {
		changed, err := d.UpdateLocation(createValidLocation(t, 1, 1), now.Add(-time.Minute))

		require.NoError(t, err)
		assert.False(t, changed)
		loc, _ := d.Location()
		assert.InDelta(t, -26.10, loc.Lat(), 1e-9)
	})

	t.Run("should reject zero location", func(t *testing.T) {
		_, err := d.UpdateLocation(kernel.Location{}, now.Add(time.Minute))

		assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestDriver_UpdateProfileAndStatus(t *testing.T) {
	d, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho"})
	require.NoError(t, err)

	require.NoError(t, d.UpdateProfile(driver.Profile{Name: "Sipho N", VehicleType: driver.VehicleTruck, VehicleID: strPtr("V7")}))
	assert.Equal(t, "Sipho N", d.Name())
	assert.Equal(t, "V7", *d.VehicleID())

	assert.Error(t, d.UpdateProfile(driver.Profile{}))
	assert.Equal(t, "Sipho N", d.Name())

	require.NoError(t, d.SetStatus(driver.StatusBusy))
	assert.Equal(t, driver.StatusBusy, d.Status())
	assert.ErrorIs(t, d.SetStatus("Sleeping"), errs.ErrValueIsInvalid)
}

func TestRestoreDriver(t *testing.T) {
	d, err := driver.NewDriver("D001", driver.Profile{Name: "Sipho"})
	require.NoError(t, err)
	_, err = d.UpdateLocation(createValidLocation(t, -26.1, 28.0), time.Now())
	require.NoError(t, err)

	restored, err := driver.RestoreDriver(d.Snapshot())

	require.NoError(t, err)
	assert.Equal(t, d.Snapshot(), restored.Snapshot())
}

func TestParseVehicleType(t *testing.T) {
	vt, err := driver.ParseVehicleType("motorcycle")
	require.NoError(t, err)
	assert.Equal(t, driver.VehicleMotorCycle, vt)

	vt, err = driver.ParseVehicleType("Foot")
	require.NoError(t, err)
	assert.Equal(t, driver.VehicleFoot, vt)

	_, err = driver.ParseVehicleType("Boat")
	assert.Error(t, err)
}
