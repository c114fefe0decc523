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

type ExpenseController struct {
	Service *services.ExpenseService
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{
		Service: services.NewExpenseService(db),
	}
}

func (ct *ExpenseController) GetExpenses(c *gin.Context) {
	farmerID := c.Query("farmerId")
	if farmerID == "" {
		response.BadRequest(c, "farmerId is required")
		return
	}

	expenses, err := ct.Service.List(farmerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense validates the same required-field contract as the earning
// path; expenses get no unvalidated shortcut.
func (ct *ExpenseController) CreateExpense(c *gin.Context) {
	var input dto.CreateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := validator.ValidateExpenseInput(&input); err != nil {
		response.FromError(c, err)
		return
	}

	expense, err := ct.Service.Create(input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, expense)
}

func (ct *ExpenseController) DeleteExpense(c *gin.Context) {
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

	response.Message(c, "Expense deleted successfully")
}
