package Controllers

import (
	"net/http"

	"DoctorsPortal/Models"

	"github.com/gin-gonic/gin"
)

// GetAppointments lists the appointment type names only; the full
// catalog with slots goes through GetAvailableAppointments.
func (api *API) GetAppointments(c *gin.Context) {
	names, err := api.AppointmentTypes.Names(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}

	specialties := make([]gin.H, 0, len(names))
	for _, name := range names {
		specialties = append(specialties, gin.H{"name": name})
	}
	c.JSON(http.StatusOK, specialties)
}

// GetAvailableAppointments returns every appointment type with the
// slots already booked on the requested date stripped out.
func (api *API) GetAvailableAppointments(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	types, err := api.AppointmentTypes.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch appointments"})
		return
	}

	booked, err := api.Bookings.ByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, Models.AvailableSlots(types, booked))
}

func (api *API) AddAppointmentType(c *gin.Context) {
	var input Models.AppointmentType
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := api.AppointmentTypes.Insert(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert appointment type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}
