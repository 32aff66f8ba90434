package services_test

import (
	"testing"

	"fleet/internal/core/domain/model/fleet"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestStore(t *testing.T) {
	stores := []fleet.Store{
		mustStore(t, "S001", "H001", -26.20, 28.04),
		mustStore(t, "S002", "H001", -26.10, 28.05),
		mustStore(t, "S003", "H002", -25.70, 28.20),
	}

	got, ok := services.NearestStore(kernel.Point{Lat: -26.105, Lng: 28.05}, stores)
	require.True(t, ok)
	assert.Equal(t, "S002", got.ID)

	got, ok = services.NearestStore(kernel.Point{Lat: -25.0, Lng: 28.3}, stores)
	require.True(t, ok)
	assert.Equal(t, "S003", got.ID)

	_, ok = services.NearestStore(kernel.Point{}, nil)
	assert.False(t, ok)
}
