package Controllers

import (
	"net/http"

	"DoctorsPortal/Models"

	"github.com/gin-gonic/gin"
)

func (api *API) GetDoctors(c *gin.Context) {
	doctors, err := api.Doctors.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch doctors"})
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (api *API) AddDoctor(c *gin.Context) {
	var doctor Models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := api.Doctors.Insert(c.Request.Context(), doctor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id})
}

func (api *API) DeleteDoctor(c *gin.Context) {
	deleted, err := api.Doctors.DeleteByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete doctor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": deleted})
}
