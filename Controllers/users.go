package Controllers

import (
	"errors"
	"net/http"

	"DoctorsPortal/Models"
	"DoctorsPortal/Utils/Token"

	"github.com/gin-gonic/gin"
)

func (api *API) GetUsers(c *gin.Context) {
	users, err := api.Users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpsertUser creates or refreshes the user keyed by the email path
// parameter and always answers with a freshly minted token. There is
// no refresh or revocation: an old token stays valid until expiry even
// if the role changes afterwards.
func (api *API) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	var user Models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := api.Users.Upsert(c.Request.Context(), email, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upsert user"})
		return
	}

	token, err := Token.GenerateToken(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{"acknowledged": true},
		"token":  token,
	})
}

// CheckAdmin reports whether the email's user carries the admin role.
// An unknown user is just not an admin.
func (api *API) CheckAdmin(c *gin.Context) {
	user, err := api.Users.ByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, Models.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"admin": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

func (api *API) GrantAdmin(c *gin.Context) {
	modified, err := api.Users.GrantAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user role"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": modified})
}
