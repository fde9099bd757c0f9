package Controllers_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"DoctorsPortal/Controllers"
	"DoctorsPortal/Models"
	"DoctorsPortal/Routes"
	"DoctorsPortal/Utils/Token"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// mailSpy records the fire-and-forget confirmation sends.
type mailSpy struct {
	sent chan Models.Booking
}

func newMailSpy() *mailSpy {
	return &mailSpy{sent: make(chan Models.Booking, 8)}
}

func (m *mailSpy) SendBookingConfirmation(b Models.Booking) error {
	m.sent <- b
	return nil
}

type testEnv struct {
	router   *gin.Engine
	api      *Controllers.API
	types    *Models.MemoryAppointmentTypes
	bookings *Models.MemoryBookings
	users    *Models.MemoryUsers
	doctors  *Models.MemoryDoctors
	payments *Models.MemoryPayments
	mail     *mailSpy
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("TOKEN_HOUR_LIFESPAN", "1")
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		types:    &Models.MemoryAppointmentTypes{},
		bookings: &Models.MemoryBookings{},
		users:    &Models.MemoryUsers{},
		doctors:  &Models.MemoryDoctors{},
		payments: &Models.MemoryPayments{},
		mail:     newMailSpy(),
	}
	env.api = &Controllers.API{
		AppointmentTypes: env.types,
		Bookings:         env.bookings,
		Users:            env.users,
		Doctors:          env.doctors,
		Payments:         env.payments,
		Mail:             env.mail,
	}

	env.router = gin.New()
	Routes.ConfigRoutes(env.router, env.api, env.users)
	return env
}

func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := Token.GenerateToken(email)
	require.NoError(t, err)
	return token
}

// addAdmin registers the email as an existing admin user.
func (e *testEnv) addAdmin(t *testing.T, email string) {
	t.Helper()
	require.NoError(t, e.users.Upsert(context.Background(), email, Models.User{Name: "Admin"}))
	_, err := e.users.GrantAdmin(context.Background(), email)
	require.NoError(t, err)
}

func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}
