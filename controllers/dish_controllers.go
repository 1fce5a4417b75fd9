package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-pos/models"
	"cafe-pos/utils"
)

type DishController struct {
	DB *gorm.DB
}

func NewDishController(db *gorm.DB) *DishController {
	return &DishController{DB: db}
}

// GetAllDishes -> optionally filtered by category
func (dc *DishController) GetAllDishes(c *gin.Context) {
	q := dc.DB.Preload("Category").Order("id ASC")
	if catID := c.Query("category_id"); catID != "" {
		q = q.Where("category_id = ?", catID)
	}

	var dishes []models.Dish
	if err := q.Find(&dishes).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of dishes", dishes)
}

// GetDishByID
func (dc *DishController) GetDishByID(c *gin.Context) {
	dishID := c.Param("dish_id")

	var dish models.Dish
	if err := dc.DB.Preload("Category").First(&dish, dishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish detail", dish)
}

// CreateDish
func (dc *DishController) CreateDish(c *gin.Context) {
	var req struct {
		CategoryID uint    `json:"category_id" binding:"required"`
		Name       string  `json:"name" binding:"required"`
		Price      float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	dish := models.Dish{
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Price:      req.Price,
	}
	if err := dc.DB.Create(&dish).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New dish created: %s (%s)", dish.Name, utils.FormatCurrency(dish.Price))
	utils.RespondJSON(c, http.StatusCreated, "Dish created", dish)
}

// UpdateDish -> edits the live catalog price. Historical order items keep
// the price snapshotted when they were created.
func (dc *DishController) UpdateDish(c *gin.Context) {
	dishID := c.Param("dish_id")

	var req struct {
		CategoryID *uint    `json:"category_id"`
		Name       *string  `json:"name"`
		Price      *float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var dish models.Dish
	if err := dc.DB.First(&dish, dishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return
	}

	updates := map[string]interface{}{}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if len(updates) > 0 {
		if err := dc.DB.Model(&dish).Updates(updates).Error; err != nil {
			respondServiceError(c, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Dish updated", dish)
}

// DeleteDish
func (dc *DishController) DeleteDish(c *gin.Context) {
	dishID := c.Param("dish_id")

	var dish models.Dish
	if err := dc.DB.First(&dish, dishID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("dish not found"))
		return
	}
	if err := dc.DB.Delete(&dish).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Dish deleted", gin.H{"id": dish.ID})
}
