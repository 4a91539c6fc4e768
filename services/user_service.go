package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sivakadari517-cloud/fitxgen-sub000/config"
	"github.com/sivakadari517-cloud/fitxgen-sub000/models"
	"github.com/sivakadari517-cloud/fitxgen-sub000/utils"
)

type ProfileInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Sex           string  `json:"sex"`
	Birthday      string  `json:"birthday"` // sent as YYYY-MM-DD
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	ActivityLevel string  `json:"activity_level"`
	FitnessGoals  string  `json:"fitness_goals"`
	ProgressPhoto string  `json:"progress_photo"` // base64 data URL
	Onboarded     bool    `json:"onboarded"`
}

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	return map[string]interface{}{
		"id":             user.ID,
		"user_id":        user.UserID,
		"email":          user.Email,
		"first_name":     user.FirstName,
		"last_name":      user.LastName,
		"sex":            user.Sex,
		"birthday":       user.Birthday.Format("2006-01-02"),
		"age":            age,
		"height_cm":      user.HeightCm,
		"weight_kg":      user.WeightKg,
		"activity_level": user.ActivityLevel,
		"fitness_goals":  user.FitnessGoals,
		"progress_photo": user.ProgressPhoto,
		"mfa_enabled":    user.MFAEnabled,
		"onboarded":      user.Onboarded,
	}, nil
}

func UpdateUserProfile(email string, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Sex != "" {
		user.Sex = input.Sex
	}

	if input.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", input.Birthday)
		if err == nil {
			user.Birthday = birthday
		}
	}

	if input.HeightCm > 0 {
		user.HeightCm = input.HeightCm
	}
	if input.WeightKg > 0 {
		user.WeightKg = input.WeightKg
	}
	if input.ActivityLevel != "" {
		user.ActivityLevel = input.ActivityLevel
	}
	if input.FitnessGoals != "" {
		user.FitnessGoals = input.FitnessGoals
	}
	if input.ProgressPhoto != "" {
		url, err := utils.UploadProgressPhoto(input.ProgressPhoto, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProgressPhoto = url
	}

	user.Onboarded = input.Onboarded

	return config.DB.Save(&user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func DeleteUser(email string) error {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return result.Error
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}

func CompleteUserOnboarding(
	email string,
	sex string,
	birthday time.Time,
	heightCm, weightKg float64,
	activityLevel, fitnessGoals string,
	progressPhotoBase64 string,
	mfaEnabled bool,
) error {
	var user models.User
	if err := config.DB.
		Where("email = ? AND disabled = ?", email, false).
		First(&user).Error; err != nil {
		return errors.New("user not found or disabled")
	}

	user.Sex = sex
	user.Birthday = birthday
	user.HeightCm = heightCm
	user.WeightKg = weightKg
	user.ActivityLevel = activityLevel
	user.FitnessGoals = fitnessGoals
	user.MFAEnabled = mfaEnabled

	if progressPhotoBase64 != "" {
		url, err := utils.UploadProgressPhoto(progressPhotoBase64, "onboarding/"+user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload progress photo: %w", err)
		}
		user.ProgressPhoto = url
	}

	user.Onboarded = true

	return config.DB.Save(&user).Error
}
