package controllers

import (
	"net/http"
	"strings"

	"github.com/sivakadari517-cloud/fitxgen-sub000/config"
	"github.com/sivakadari517-cloud/fitxgen-sub000/models"
	"github.com/sivakadari517-cloud/fitxgen-sub000/services"

	"github.com/gin-gonic/gin"
)

// GetAIRecommendations returns the stored rule-based recommendations for the
// user's latest result plus AI-generated suggestions. The AI output only
// augments the rule set; when the model call fails the rule-based list is
// still returned.
func GetAIRecommendations(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var rec models.CompositionRecord
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at desc").
		First(&rec).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no composition records yet"})
		return
	}

	recSvc := services.NewRecService()
	aiRecs, aiErr := recSvc.GetRecs(uid)

	resp := gin.H{
		"rule_based": splitLines(rec.Recommendations),
		"ai":         aiRecs,
	}
	if aiErr != nil {
		resp["ai_error"] = aiErr.Error()
	}
	c.JSON(http.StatusOK, resp)
}

func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
