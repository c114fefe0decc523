package controllers

import (
	"net/http"
	"strconv"

	"farmpro/response"
	"farmpro/services"

	"github.com/gin-gonic/gin"
)

type SuggestController struct {
	Service *services.SuggestService
}

func NewSuggestController(svc *services.SuggestService) *SuggestController {
	return &SuggestController{Service: svc}
}

func suggestParams(c *gin.Context) (farmerID, q string, n int, ok bool) {
	farmerID = c.Query("farmerId")
	q = c.Query("q")
	if farmerID == "" || q == "" {
		response.BadRequest(c, "farmerId and q are required")
		return "", "", 0, false
	}
	n, _ = strconv.Atoi(c.DefaultQuery("limit", "5"))
	if n <= 0 || n > 20 {
		n = 5
	}
	return farmerID, q, n, true
}

// SuggestSources completes earning sources from the caller's history.
func (ct *SuggestController) SuggestSources(c *gin.Context) {
	farmerID, q, n, ok := suggestParams(c)
	if !ok {
		return
	}

	suggestions, err := ct.Service.SuggestSources(farmerID, q, n)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// SuggestCategories completes expense categories from the caller's history.
func (ct *SuggestController) SuggestCategories(c *gin.Context) {
	farmerID, q, n, ok := suggestParams(c)
	if !ok {
		return
	}

	suggestions, err := ct.Service.SuggestCategories(farmerID, q, n)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
