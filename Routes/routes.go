package Routes

import (
	"net/http"

	"DoctorsPortal/Controllers"
	"DoctorsPortal/Middleware"
	"DoctorsPortal/Models"
	"DoctorsPortal/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine, api *Controllers.API, users Models.UserStore) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors Portal server is running!")
	})

	// Public routes
	router.GET("/appointments", api.GetAppointments)
	router.GET("/available-appointments", api.GetAvailableAppointments)
	router.PUT("/user/:email", api.UpsertUser)
	router.POST("/bookings", api.CreateBooking)

	// Authenticated routes
	authorized := router.Group("/")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		authorized.GET("/admin/:email", api.CheckAdmin)
		authorized.GET("/bookings", api.GetBookings)
		authorized.GET("/bookings/:id", api.GetBookingByID)
		authorized.PATCH("/bookings/:id", api.PayBooking)
		authorized.POST("/create-payment-intent", api.CreatePaymentIntent)
	}

	// Admin routes
	admin := router.Group("/")
	admin.Use(Middleware.JwtAuthMiddleware())
	admin.Use(Middleware.AdminCheck(users))
	{
		admin.GET("/users", api.GetUsers)
		admin.PUT("/user/admin/:email", api.GrantAdmin)
		admin.POST("/appointments", api.AddAppointmentType)
		admin.GET("/doctors", api.GetDoctors)
		admin.POST("/doctors", api.AddDoctor)
		admin.DELETE("/doctors/:email", api.DeleteDoctor)
		admin.GET("/export/bookings", api.ExportBookings)

		// SSE (Server-Sent Events) route
		admin.GET("/events", SSE.RequestSSE)
	}
}
