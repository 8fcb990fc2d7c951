package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augie-sif/sif-backend/dto"
	"github.com/augie-sif/sif-backend/services"
)

var holdingService = services.NewHoldingService()

// GetHoldings returns all portfolio holdings
func GetHoldings(c *gin.Context) {
	holdings, err := holdingService.List()
	if err != nil {
		handleServiceError(c, err, "Holdings not found")
		return
	}
	c.JSON(http.StatusOK, holdings)
}

// GetHolding returns a single holding
func GetHolding(c *gin.Context) {
	holding, err := holdingService.Get(c.Param("id"))
	if err != nil {
		handleServiceError(c, err, "Holding not found")
		return
	}
	c.JSON(http.StatusOK, holding)
}

// CreateHolding adds a holding to the portfolio
func CreateHolding(c *gin.Context) {
	var req dto.HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker, company name, shares, and purchase price are required"})
		return
	}

	holding, err := holdingService.Create(req)
	if err != nil {
		handleServiceError(c, err, "Holding not found")
		return
	}
	c.JSON(http.StatusCreated, holding)
}

// UpdateHolding modifies a holding
func UpdateHolding(c *gin.Context) {
	var req dto.HoldingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ticker, company name, shares, and purchase price are required"})
		return
	}

	if err := holdingService.Update(c.Param("id"), req); err != nil {
		handleServiceError(c, err, "Holding not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holding updated successfully"})
}

// DeleteHolding removes a holding
func DeleteHolding(c *gin.Context) {
	if err := holdingService.Delete(c.Param("id")); err != nil {
		handleServiceError(c, err, "Holding not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holding deleted successfully"})
}
