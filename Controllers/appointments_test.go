package Controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"DoctorsPortal/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCleaning(t *testing.T, env *testEnv) {
	t.Helper()
	_, err := env.types.Insert(context.Background(), Models.AppointmentType{
		Name: "Cleaning", Fee: 50, Slots: []string{"9am", "10am"},
	})
	require.NoError(t, err)
}

func TestGetAppointments(t *testing.T) {
	env := newTestEnv(t)
	seedCleaning(t, env)

	resp := env.do("GET", "/appointments", "", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var names []map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &names))
	require.Len(t, names, 1)
	assert.Equal(t, "Cleaning", names[0]["name"])
}

func TestGetAvailableAppointments(t *testing.T) {
	env := newTestEnv(t)
	seedCleaning(t, env)
	_, err := env.bookings.Insert(context.Background(), Models.Booking{
		Treatment: "Cleaning", PatientEmail: "alice@example.com", Date: "2024-01-01", Slot: "9am",
	})
	require.NoError(t, err)

	t.Run("MissingDateRejected", func(t *testing.T) {
		resp := env.do("GET", "/available-appointments", "", "")
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("BookedSlotHidden", func(t *testing.T) {
		resp := env.do("GET", "/available-appointments?date=2024-01-01", "", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var types []Models.AppointmentType
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &types))
		require.Len(t, types, 1)
		assert.Equal(t, []string{"10am"}, types[0].Slots)
	})

	t.Run("OtherDateFullyAvailable", func(t *testing.T) {
		resp := env.do("GET", "/available-appointments?date=2024-01-02", "", "")
		require.Equal(t, http.StatusOK, resp.Code)

		var types []Models.AppointmentType
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &types))
		require.Len(t, types, 1)
		assert.Equal(t, []string{"9am", "10am"}, types[0].Slots)
	})
}

func TestAddAppointmentType(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin(t, "admin@example.com")

	payload := `{"name":"Whitening","fee":120,"slots":["9am","11am"]}`

	t.Run("AdminOnly", func(t *testing.T) {
		resp := env.do("POST", "/appointments", payload, env.tokenFor(t, "nobody@example.com"))
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("AdminCanCreate", func(t *testing.T) {
		resp := env.do("POST", "/appointments", payload, env.tokenFor(t, "admin@example.com"))
		require.Equal(t, http.StatusOK, resp.Code)

		names, err := env.types.Names(context.Background())
		require.NoError(t, err)
		assert.Contains(t, names, "Whitening")
	})
}
