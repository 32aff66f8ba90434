package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/zone"
	"fleet/internal/core/domain/services"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateStoreCommandHandler_Handle(t *testing.T) {
	t.Run("new store serves the next order", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateStoreCommandHandler(f.fleet())
		cmd, err := commands.NewCreateStoreCommand("S002", "Pretoria", mustLocation(t, -25.75, 28.19), "H2")
		require.NoError(t, err)

		store, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "H2", store.HubID)
		got, err := f.uow.StoreRepository().FindNearest(t.Context(), kernel.Point{Lat: -25.76, Lng: 28.18})
		require.NoError(t, err)
		assert.Equal(t, "S002", got.ID)
	})

	t.Run("duplicate store is rejected", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewCreateStoreCommand("S001", "Again", mustLocation(t, -26.0, 28.0), "H1")
		require.NoError(t, err)

		_, err = commands.NewCreateStoreCommandHandler(f.fleet()).Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	})

	t.Run("store without hub is invalid", func(t *testing.T) {
		_, err := commands.NewCreateStoreCommand("S003", "Nowhere", mustLocation(t, -26.0, 28.0), "")

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateTeamCommandHandler_Handle(t *testing.T) {
	f := newFixture(t)
	handler := commands.NewCreateTeamCommandHandler(f.fleet())
	cmd, err := commands.NewCreateTeamCommand("T3", "Night shift", "H1")
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), cmd)
	require.NoError(t, err)
	_, err = handler.Handle(t.Context(), cmd)

	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	got, err := f.uow.TeamRepository().Get(t.Context(), "T3")
	require.NoError(t, err)
	assert.Equal(t, "Night shift", got.Name)
}

func TestCreateZoneCommandHandler_Handle(t *testing.T) {
	square, err := zone.NewPolygon([]kernel.Point{
		{Lat: -26.2, Lng: 28.0}, {Lat: -26.2, Lng: 28.1}, {Lat: -26.1, Lng: 28.1}, {Lat: -26.1, Lng: 28.0},
	})
	require.NoError(t, err)

	t.Run("exclusion zone is checked on the next location update", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewExclusionZoneCommand("X9", "Road works", square, zone.NoGo)
		require.NoError(t, err)

		_, err = commands.NewCreateZoneCommandHandler(f.fleet()).Handle(t.Context(), cmd)
		require.NoError(t, err)

		res := locate(t, commands.NewUpdateDriverLocationCommandHandler(f.drivers(), f.emitter, services.NewZoneEntryTracker()), "D001", -26.15, 28.05)
		require.Len(t, res.Entered, 1)
		assert.Equal(t, "X9", res.Entered[0].ID)
	})

	t.Run("geofence is stored by kind", func(t *testing.T) {
		f := newFixture(t)
		cmd, err := commands.NewGeofenceCommand("G1", "Sandton", square, "#00ff00", strPtr("H1"))
		require.NoError(t, err)

		_, err = commands.NewCreateZoneCommandHandler(f.fleet()).Handle(t.Context(), cmd)
		require.NoError(t, err)

		fences, err := f.uow.ZoneRepository().GetAllByKind(t.Context(), zone.KindGeofence)
		require.NoError(t, err)
		require.Len(t, fences, 1)
		assert.Equal(t, "G1", fences[0].ID)
	})

	t.Run("unknown exclusion type is invalid", func(t *testing.T) {
		_, err := commands.NewExclusionZoneCommand("X10", "Odd", square, "Fast-lane")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed command is refused", func(t *testing.T) {
		f := newFixture(t)

		_, err := commands.NewCreateZoneCommandHandler(f.fleet()).Handle(t.Context(), commands.CreateZoneCommand{})

		assert.ErrorIs(t, err, commands.ErrCreateZoneCommandIsNotConstructed)
	})
}
