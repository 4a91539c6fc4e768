package controllers

import (
	"net/http"
	"time"

	"github.com/sivakadari517-cloud/fitxgen-sub000/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	email := c.GetString("email")
	profile, err := services.GetUserProfile(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	email := c.GetString("email")
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := services.UpdateUserProfile(email, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}

type OnboardingInput struct {
	Sex           string  `json:"sex" binding:"required"`
	Birthday      string  `json:"birthday" binding:"required"` // YYYY-MM-DD
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	ActivityLevel string  `json:"activity_level"`
	FitnessGoals  string  `json:"fitness_goals"`
	ProgressPhoto string  `json:"progress_photo"`
	MFAEnabled    bool    `json:"mfa_enabled"`
}

func CompleteOnboarding(c *gin.Context) {
	email := c.GetString("email")
	var input OnboardingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	birthday, err := time.Parse("2006-01-02", input.Birthday)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "birthday must be YYYY-MM-DD"})
		return
	}

	err = services.CompleteUserOnboarding(
		email,
		input.Sex,
		birthday,
		input.HeightCm, input.WeightKg,
		input.ActivityLevel, input.FitnessGoals,
		input.ProgressPhoto,
		input.MFAEnabled,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "onboarding complete"})
}

func DeleteAccount(c *gin.Context) {
	email := c.GetString("email")
	if err := services.DeleteUser(email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account disabled"})
}
