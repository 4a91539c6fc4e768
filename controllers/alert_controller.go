package controllers

import (
	"net/http"

	"github.com/sivakadari517-cloud/fitxgen-sub000/services"

	"github.com/gin-gonic/gin"
)

// GET /user/alerts — anomaly flags raised on the user's computed results.
func GetAlerts(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	alerts, err := services.ListAlerts(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
