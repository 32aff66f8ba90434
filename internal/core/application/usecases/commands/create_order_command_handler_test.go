package commands_test

import (
	"strings"
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/ports"
	"fleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	t.Run("should generate an id", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("", validDetails(t), order.Unassigned, nil, nil)

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(cmd.OrderID(), kernel.OrderIDPrefix))
	})

	t.Run("should reject non initial statuses", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("ORD001", validDetails(t), order.PickedUp, nil, nil)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty driver id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("ORD001", validDetails(t), order.Unassigned, strPtr(""), nil)

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unconstructed command is invalid", func(t *testing.T) {
		assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle(t *testing.T) {
	t.Run("should persist unassigned order at version 1 without alerts", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateOrderCommandHandler(f.orders(), f.emitter)
		cmd, err := commands.NewCreateOrderCommand("ORD001", validDetails(t), order.Unassigned, nil, nil)
		require.NoError(t, err)

		res, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Nil(t, res.ExternalID)
		stored := f.getOrder(t, "ORD001")
		assert.Equal(t, order.Unassigned, stored.Status())
		assert.Equal(t, int64(1), stored.Version())
		assert.Len(t, stored.ActivityLog(), 1)
		assert.Empty(t, f.emitter.types())
	})

	t.Run("should assign driver with default vehicle in the same transaction", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateOrderCommandHandler(f.orders(), f.emitter)
		cmd, err := commands.NewCreateOrderCommand("ORD001", validDetails(t), order.Unassigned, strPtr("D001"), nil)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd.WithExternalID())

		require.NoError(t, err)
		stored := f.getOrder(t, "ORD001")
		assert.Equal(t, order.Assigned, stored.Status())
		assert.Equal(t, "V1", *stored.VehicleID())
		require.Len(t, stored.ActivityLog(), 2)
		assert.Equal(t, order.Assigned, stored.ActivityLog()[1].Status)

		jobID, err := f.uow.IDMappingRepository().FindExternal(t.Context(), ports.MappingOrder, "ORD001")
		require.NoError(t, err)
		assert.Positive(t, jobID)
	})

	t.Run("should fail with not found before writing for unknown driver", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateOrderCommandHandler(f.orders(), f.emitter)
		cmd, err := commands.NewCreateOrderCommand("ORD001", validDetails(t), order.Unassigned, strPtr("D404"), nil)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd.WithExternalID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = f.uow.OrderRepository().Get(t.Context(), "ORD001")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
		_, err = f.uow.IDMappingRepository().FindExternal(t.Context(), ports.MappingOrder, "ORD001")
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail for unknown store", func(t *testing.T) {
		f := newFixture(t)
		handler := commands.NewCreateOrderCommandHandler(f.orders(), f.emitter)
		details := validDetails(t)
		details.StoreID = "S404"
		cmd, err := commands.NewCreateOrderCommand("ORD001", details, order.Unassigned, nil, nil)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should report duplicate ids as conflict", func(t *testing.T) {
		f := newFixture(t)
		f.addOrder(t, "ORD001")
		handler := commands.NewCreateOrderCommandHandler(f.orders(), f.emitter)
		cmd, err := commands.NewCreateOrderCommand("ORD001", validDetails(t), order.Unassigned, nil, nil)
		require.NoError(t, err)

		_, err = handler.Handle(t.Context(), cmd)

		assert.True(t, errs.IsConflict(err))
	})
}
