package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-pos/models"
	"cafe-pos/utils"
)

type FloorController struct {
	DB *gorm.DB
}

func NewFloorController(db *gorm.DB) *FloorController {
	return &FloorController{DB: db}
}

// GetAllFloors -> floors with their tables, in display order
func (fc *FloorController) GetAllFloors(c *gin.Context) {
	var floors []models.Floor
	if err := fc.DB.Preload("Tables").Order("display_order ASC").Find(&floors).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of floors", floors)
}

// GetFloorByID
func (fc *FloorController) GetFloorByID(c *gin.Context) {
	floorID := c.Param("floor_id")

	var floor models.Floor
	if err := fc.DB.Preload("Tables").First(&floor, floorID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("floor not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor detail", floor)
}

// CreateFloor
func (fc *FloorController) CreateFloor(c *gin.Context) {
	var req struct {
		Name  string `json:"name" binding:"required"`
		Order int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	floor := models.Floor{Name: req.Name, Order: req.Order}
	if err := fc.DB.Create(&floor).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Floor created", floor)
}

// UpdateFloor
func (fc *FloorController) UpdateFloor(c *gin.Context) {
	floorID := c.Param("floor_id")

	var req struct {
		Name  *string `json:"name"`
		Order *int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var floor models.Floor
	if err := fc.DB.First(&floor, floorID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("floor not found"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Order != nil {
		updates["display_order"] = *req.Order
	}
	if len(updates) > 0 {
		if err := fc.DB.Model(&floor).Updates(updates).Error; err != nil {
			respondServiceError(c, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Floor updated", floor)
}

// DeleteFloor
func (fc *FloorController) DeleteFloor(c *gin.Context) {
	floorID := c.Param("floor_id")

	var floor models.Floor
	if err := fc.DB.First(&floor, floorID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("floor not found"))
		return
	}
	if err := fc.DB.Delete(&floor).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Floor deleted", gin.H{"id": floor.ID})
}
