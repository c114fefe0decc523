package controllers

import (
	"net/http"
	"strconv"

	"farmpro/dto"
	"farmpro/response"
	"farmpro/services"
	"farmpro/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EarningController struct {
	Service *services.EarningService
}

func NewEarningController(db *gorm.DB) *EarningController {
	return &EarningController{
		Service: services.NewEarningService(db),
	}
}

// GetEarnings lists the caller's earnings, newest date first.
func (ct *EarningController) GetEarnings(c *gin.Context) {
	farmerID := c.Query("farmerId")
	if farmerID == "" {
		response.BadRequest(c, "farmerId is required")
		return
	}

	earnings, err := ct.Service.List(farmerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, earnings)
}

func (ct *EarningController) CreateEarning(c *gin.Context) {
	var input dto.CreateEarningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateEarningInput(&input); err != nil {
		response.FromError(c, err)
		return
	}

	earning, err := ct.Service.Create(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, earning)
}

func (ct *EarningController) DeleteEarning(c *gin.Context) {
	farmerID := c.Query("farmerId")
	idStr := c.Query("id")
	if farmerID == "" || idStr == "" {
		response.BadRequest(c, "farmerId and id are required")
		return
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		response.BadRequest(c, "id must be a positive number")
		return
	}

	if err := ct.Service.Delete(farmerID, uint(id)); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, "Earning deleted successfully")
}
