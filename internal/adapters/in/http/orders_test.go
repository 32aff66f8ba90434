package http_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/tookan"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const newOrderBody = `{
	"id": "ORD001",
	"title": "Groceries",
	"customerName": "Naledi",
	"origin": {"lat": -26.10, "lng": 28.05, "address": "Sandton City"},
	"destination": {"lat": -26.14, "lng": 28.04, "address": "Rosebank"},
	"storeId": "S001",
	"items": [{"name": "Milk", "quantity": 2}]
}`

func TestCreateOrder(t *testing.T) {
	t.Run("should create an unassigned order", func(t *testing.T) {
		app := newTestApp(t, "")

		rec := app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		o := decodeJSON[httpin.Order](t, rec)
		assert.Equal(t, "ORD001", o.ID)
		assert.Equal(t, "Unassigned", o.Status)
		assert.Equal(t, "Medium", o.Priority)
		assert.Equal(t, "Delivery", o.OrderType)
		assert.Equal(t, int64(1), o.Version)
		require.Len(t, o.ActivityLog, 1)
		assert.Equal(t, "Unassigned", o.ActivityLog[0].Status)
	})

	t.Run("should reject missing fields with 400", func(t *testing.T) {
		app := newTestApp(t, "")

		rec := app.do(t, http.MethodPost, "/api/v1/orders", `{"origin": {"lat": 95, "lng": 28}}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		e := decodeJSON[httpin.Error](t, rec)
		assert.Contains(t, e.Message, "title")
		assert.Contains(t, e.Message, "origin.lat")
		assert.Contains(t, e.Message, "storeId")
	})

	t.Run("should reject a malformed body with 400", func(t *testing.T) {
		app := newTestApp(t, "")

		rec := app.do(t, http.MethodPost, "/api/v1/orders", `{"title": `)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown store is 404", func(t *testing.T) {
		app := newTestApp(t, "")
		body := `{"title": "x", "origin": {"lat": 1, "lng": 1}, "destination": {"lat": 1, "lng": 1}, "storeId": "S404"}`

		rec := app.do(t, http.MethodPost, "/api/v1/orders", body)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate id is 409", func(t *testing.T) {
		app := newTestApp(t, "")
		require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody).Code)

		rec := app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody)

		require.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetOrder(t *testing.T) {
	app := newTestApp(t, "")
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody).Code)

	rec := app.do(t, http.MethodGet, "/api/v1/orders/ORD001", "")
	require.Equal(t, http.StatusOK, rec.Code)
	o := decodeJSON[httpin.Order](t, rec)
	assert.Equal(t, "Groceries", o.Title)
	require.Len(t, o.Items, 1)
	assert.Equal(t, 2, o.Items[0].Quantity)

	rec = app.do(t, http.MethodGet, "/api/v1/orders/ORD404", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSetOrderStatus(t *testing.T) {
	app := newTestApp(t, "")
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody).Code)

	rec := app.do(t, http.MethodPut, "/api/v1/orders/ORD001/status", `{"status": "At Store", "version": 1}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	o := decodeJSON[httpin.Order](t, rec)
	assert.Equal(t, "At Store", o.Status)
	assert.Equal(t, int64(2), o.Version)
	assert.Len(t, o.ActivityLog, 2)

	rec = app.do(t, http.MethodPut, "/api/v1/orders/ORD001/status", `{"status": "Failed", "version": 1}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = app.do(t, http.MethodPut, "/api/v1/orders/ORD001/status", `{"status": "Lost"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignDriver(t *testing.T) {
	app := newTestApp(t, "")
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody).Code)

	rec := app.do(t, http.MethodPut, "/api/v1/orders/ORD001/assignment", `{"driverId": "D002"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code, "D002 serves another hub")

	rec = app.do(t, http.MethodPut, "/api/v1/orders/ORD001/assignment", `{"driverId": "D002", "override": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	o := decodeJSON[httpin.Order](t, rec)
	assert.Equal(t, "Assigned", o.Status)
	require.NotNil(t, o.DriverID)
	assert.Equal(t, "D002", *o.DriverID)
}

func TestGetEligibleDrivers(t *testing.T) {
	app := newTestApp(t, "")
	require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody).Code)

	rec := app.do(t, http.MethodGet, "/api/v1/orders/ORD001/eligible-drivers", "")

	require.Equal(t, http.StatusOK, rec.Code)
	drivers := decodeJSON[[]httpin.Driver](t, rec)
	require.Len(t, drivers, 1)
	assert.Equal(t, "D001", drivers[0].ID)
}

func TestExportOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("should bind the remote job id", func(t *testing.T) {
		app := newTestApp(t, "")
		require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody).Code)
		app.remote.On("CreateTask", mock.Anything, mock.Anything).Return(tookan.TaskCreated{JobID: 880}, nil).Once()

		rec := app.do(t, http.MethodPost, "/api/v1/orders/ORD001/tookan-export", "")

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, httpin.Export{OrderID: "ORD001", JobID: 880}, decodeJSON[httpin.Export](t, rec))
		jobID, err := app.uow.IDMappingRepository().FindExternal(ctx, ports.MappingRemoteOrder, "ORD001")
		require.NoError(t, err)
		assert.Equal(t, int64(880), jobID)

		rec = app.do(t, http.MethodPost, "/api/v1/orders/ORD001/tookan-export", "")
		require.Equal(t, http.StatusConflict, rec.Code)
		app.remote.AssertNumberOfCalls(t, "CreateTask", 1)
	})

	t.Run("remote failure is 500", func(t *testing.T) {
		app := newTestApp(t, "")
		require.Equal(t, http.StatusCreated, app.do(t, http.MethodPost, "/api/v1/orders", newOrderBody).Code)
		app.remote.On("CreateTask", mock.Anything, mock.Anything).
			Return(tookan.TaskCreated{}, errors.New("connection refused")).Once()

		rec := app.do(t, http.MethodPost, "/api/v1/orders/ORD001/tookan-export", "")

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeJSON[httpin.Error](t, rec).Message, "connection refused")
	})
}
