package controllers

import (
	"net/http"
	"strconv"

	"github.com/sivakadari517-cloud/fitxgen-sub000/services"
	"github.com/sivakadari517-cloud/fitxgen-sub000/utils"

	"github.com/gin-gonic/gin"
)

type MeasurementController struct {
	Svc *services.CompositionService
}

func NewMeasurementController(svc *services.CompositionService) *MeasurementController {
	return &MeasurementController{Svc: svc}
}

// MeasurementRequest is the raw measurement payload. Fields are optional at
// the HTTP layer; the validator reports anything missing or out of range.
type MeasurementRequest struct {
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg"`
	WaistCm       float64 `json:"waist_cm"`
	NeckCm        float64 `json:"neck_cm"`
	HipCm         float64 `json:"hip_cm"`
	ActivityLevel string  `json:"activity_level"`
}

func (r MeasurementRequest) toInput() utils.MeasurementInput {
	return utils.MeasurementInput{
		AgeYears: r.Age,
		Sex:      utils.Sex(r.Sex),
		HeightCm: r.HeightCm,
		WeightKg: r.WeightKg,
		WaistCm:  r.WaistCm,
		NeckCm:   r.NeckCm,
		HipCm:    r.HipCm,
	}
}

// POST /measurements/validate — dry-run the validator so clients can show
// field errors before submitting.
func (mc *MeasurementController) ValidateMeasurement(c *gin.Context) {
	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	violations := utils.ValidateMeasurements(req.toInput())
	c.JSON(http.StatusOK, gin.H{
		"valid":      len(violations) == 0,
		"violations": violations,
	})
}

// POST /measurements — validate, compute, persist, and return the full result.
func (mc *MeasurementController) CreateMeasurement(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	in := req.toInput()
	if violations := utils.ValidateMeasurements(in); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"violations": violations})
		return
	}

	outcome, err := mc.Svc.RecordMeasurement(uid, in, utils.ActivityLevel(req.ActivityLevel))
	if err != nil {
		// unreachable when the validator gate above is respected
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

// GET /measurements/history?limit=50
func (mc *MeasurementController) GetHistory(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	records, err := mc.Svc.History(uid, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

type EnergyRequest struct {
	Age           int     `json:"age" binding:"required"`
	Sex           string  `json:"sex" binding:"required"`
	HeightCm      float64 `json:"height_cm" binding:"required"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	ActivityLevel string  `json:"activity_level"`
}

// POST /measurements/energy — BMR and TDEE without persisting anything.
func CalculateEnergy(c *gin.Context) {
	var req EnergyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bmr := utils.CalculateBMR(req.WeightKg, req.HeightCm, req.Age, utils.Sex(req.Sex))
	tdee := utils.CalculateTDEE(bmr, utils.ActivityLevel(req.ActivityLevel))

	c.JSON(http.StatusOK, gin.H{"bmr": bmr, "tdee": tdee})
}
