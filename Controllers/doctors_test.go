package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"DoctorsPortal/Models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctors(t *testing.T) {
	env := newTestEnv(t)
	env.addAdmin(t, "admin@example.com")
	admin := env.tokenFor(t, "admin@example.com")

	doctor := `{"name":"Dr. Strange","email":"strange@example.com","specialty":"Neurology"}`

	t.Run("AdminGateApplies", func(t *testing.T) {
		resp := env.do("GET", "/doctors", "", "")
		assert.Equal(t, http.StatusUnauthorized, resp.Code)

		resp = env.do("POST", "/doctors", doctor, env.tokenFor(t, "nobody@example.com"))
		assert.Equal(t, http.StatusForbidden, resp.Code)
	})

	t.Run("AddListDelete", func(t *testing.T) {
		resp := env.do("POST", "/doctors", doctor, admin)
		require.Equal(t, http.StatusOK, resp.Code)

		resp = env.do("GET", "/doctors", "", admin)
		require.Equal(t, http.StatusOK, resp.Code)
		var doctors []Models.Doctor
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doctors))
		require.Len(t, doctors, 1)
		assert.Equal(t, "Dr. Strange", doctors[0].Name)

		resp = env.do("DELETE", "/doctors/strange@example.com", "", admin)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"deletedCount":1`)

		resp = env.do("GET", "/doctors", "", admin)
		require.Equal(t, http.StatusOK, resp.Code)
		doctors = nil
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doctors))
		assert.Empty(t, doctors)
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		resp := env.do("POST", "/doctors", `{"name":"No Email"}`, admin)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
