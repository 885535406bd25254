package usecases

import (
	"testing"

	"agriwise-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPumpService() (*PumpService, *fakePumpRepo, *fakeSensorRepo) {
	pumps := newFakePumpRepo()
	sensors := newFakeSensorRepo()
	return NewPumpService(pumps, sensors), pumps, sensors
}

func TestCreatePump_DefaultsAndOwnership(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPumpService()

	pump := &entities.Pump{Name: "North field", Longitude: 36.8, Latitude: -1.3}
	require.NoError(t, svc.CreatePump(pump, "owner-1"))

	assert.Equal(t, "owner-1", pump.UserID)
	assert.Equal(t, entities.PumpStatusOff, pump.Status)
	assert.NotEmpty(t, pump.ID)
}

func TestCreatePump_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPumpService()

	cases := []struct {
		name string
		pump entities.Pump
		want error
	}{
		{"missing name", entities.Pump{Longitude: 0, Latitude: 0}, ErrValidation},
		{"longitude out of range", entities.Pump{Name: "p", Longitude: 181}, ErrValidation},
		{"latitude out of range", entities.Pump{Name: "p", Latitude: -91}, ErrValidation},
		{"unknown status", entities.Pump{Name: "p", Status: "broken"}, ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pump := tc.pump
			err := svc.CreatePump(&pump, "owner-1")
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGetPump_IncludesSensors(t *testing.T) {
	t.Parallel()

	svc, _, sensors := newPumpService()

	pump := &entities.Pump{Name: "North field"}
	require.NoError(t, svc.CreatePump(pump, "owner-1"))

	require.NoError(t, sensors.Create(&entities.Sensor{Name: "s1", UserID: "owner-1", PumpID: pump.ID}))
	require.NoError(t, sensors.Create(&entities.Sensor{Name: "s2", UserID: "owner-1", PumpID: pump.ID}))
	require.NoError(t, sensors.Create(&entities.Sensor{Name: "elsewhere", UserID: "owner-1", PumpID: "other-pump"}))

	got, err := svc.GetPump(pump.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, pump.ID, got.ID)
	assert.Len(t, got.Sensors, 2)
}

func TestGetPump_ForeignOwnerLooksLikeMissing(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPumpService()

	pump := &entities.Pump{Name: "North field"}
	require.NoError(t, svc.CreatePump(pump, "owner-1"))

	_, err := svc.GetPump(pump.ID, "owner-2")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetPump("no-such-pump", "owner-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPumps_OnlyOwn(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPumpService()

	require.NoError(t, svc.CreatePump(&entities.Pump{Name: "mine"}, "owner-1"))
	require.NoError(t, svc.CreatePump(&entities.Pump{Name: "also mine"}, "owner-1"))
	require.NoError(t, svc.CreatePump(&entities.Pump{Name: "theirs"}, "owner-2"))

	mine, err := svc.ListPumps("owner-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := svc.ListPumps("owner-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdatePump_ValidateBeforeCommit(t *testing.T) {
	t.Parallel()

	svc, pumps, _ := newPumpService()

	pump := &entities.Pump{Name: "North field", Longitude: 10}
	require.NoError(t, svc.CreatePump(pump, "owner-1"))

	// a rejected update leaves the stored record untouched
	_, err := svc.UpdatePump(&entities.Pump{ID: pump.ID, Name: "moved", Longitude: 999}, "owner-1")
	assert.ErrorIs(t, err, ErrValidation)

	stored, err := pumps.GetByIDAndOwner(pump.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "North field", stored.Name)
	assert.Equal(t, float64(10), stored.Longitude)

	updated, err := svc.UpdatePump(&entities.Pump{ID: pump.ID, Name: "moved", Longitude: 12}, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "moved", updated.Name)
	assert.Equal(t, "owner-1", updated.UserID)
}

func TestUpdatePump_ForeignOwner(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPumpService()

	pump := &entities.Pump{Name: "North field"}
	require.NoError(t, svc.CreatePump(pump, "owner-1"))

	_, err := svc.UpdatePump(&entities.Pump{ID: pump.ID, Name: "hijacked"}, "owner-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetPumpStatus(t *testing.T) {
	t.Parallel()

	svc, pumps, _ := newPumpService()

	pump := &entities.Pump{Name: "North field"}
	require.NoError(t, svc.CreatePump(pump, "owner-1"))

	updated, err := svc.SetPumpStatus(pump.ID, "owner-1", entities.PumpStatusOn)
	require.NoError(t, err)
	assert.Equal(t, entities.PumpStatusOn, updated.Status)

	// an unknown status is rejected before any store write
	_, err = svc.SetPumpStatus(pump.ID, "owner-1", "exploded")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	stored, err := pumps.GetByIDAndOwner(pump.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, entities.PumpStatusOn, stored.Status)

	// a foreign owner cannot toggle the pump
	_, err = svc.SetPumpStatus(pump.ID, "owner-2", entities.PumpStatusOff)
	assert.ErrorIs(t, err, ErrNotFound)
	stored, err = pumps.GetByIDAndOwner(pump.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, entities.PumpStatusOn, stored.Status)
}

func TestDeletePump(t *testing.T) {
	t.Parallel()

	svc, _, _ := newPumpService()

	pump := &entities.Pump{Name: "North field"}
	require.NoError(t, svc.CreatePump(pump, "owner-1"))

	assert.ErrorIs(t, svc.DeletePump(pump.ID, "owner-2"), ErrNotFound)
	require.NoError(t, svc.DeletePump(pump.ID, "owner-1"))
	assert.ErrorIs(t, svc.DeletePump(pump.ID, "owner-1"), ErrNotFound)
}
