package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"cafe-pos/models"
	"cafe-pos/services"
	"cafe-pos/utils"
)

type TableController struct {
	DB     *gorm.DB
	Tables *services.TableService
}

func NewTableController(db *gorm.DB, tables *services.TableService) *TableController {
	return &TableController{DB: db, Tables: tables}
}

// GetAllTables -> all tables, optionally filtered by floor, each with its
// open session (if any).
func (tc *TableController) GetAllTables(c *gin.Context) {
	q := tc.DB.Preload("Sessions", "end_time IS NULL").Order("id ASC")
	if floorID := c.Query("floor_id"); floorID != "" {
		q = q.Where("floor_id = ?", floorID)
	}

	var tables []models.Table
	if err := q.Find(&tables).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

// GetTableByID -> one table with floor and the open session including its
// orders and items.
func (tc *TableController) GetTableByID(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	err := tc.DB.Preload("Floor").
		Preload("Sessions", "end_time IS NULL").
		Preload("Sessions.Orders.Items.Dish").
		First(&table, tableID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
			return
		}
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table detail", table)
}

// CreateTable -> add a table to a floor
func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		FloorID    uint    `json:"floor_id" binding:"required"`
		Name       string  `json:"name" binding:"required"`
		X          int     `json:"x"`
		Y          int     `json:"y"`
		HourlyRate float64 `json:"hourly_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.Table{
		FloorID:    req.FloorID,
		Name:       req.Name,
		X:          req.X,
		Y:          req.Y,
		HourlyRate: req.HourlyRate,
		Status:     models.TableStatusEmpty,
	}
	if err := tc.DB.Create(&table).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("New table created: %s (floor=%d, rate=%s/h)",
		table.Name, table.FloorID, utils.FormatCurrency(table.HourlyRate))
	utils.RespondJSON(c, http.StatusCreated, "Table created successfully", table)
}

// UpdateTable -> edit name, position or hourly rate. Status is owned by the
// occupancy state machine and is not writable here.
func (tc *TableController) UpdateTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var req struct {
		Name       *string  `json:"name"`
		X          *int     `json:"x"`
		Y          *int     `json:"y"`
		HourlyRate *float64 `json:"hourly_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.X != nil {
		updates["x"] = *req.X
	}
	if req.Y != nil {
		updates["y"] = *req.Y
	}
	if req.HourlyRate != nil {
		updates["hourly_rate"] = *req.HourlyRate
	}
	if len(updates) > 0 {
		if err := tc.DB.Model(&table).Updates(updates).Error; err != nil {
			respondServiceError(c, err)
			return
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Table updated", table)
}

// DeleteTable
func (tc *TableController) DeleteTable(c *gin.Context) {
	tableID := c.Param("table_id")

	var table models.Table
	if err := tc.DB.First(&table, tableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("table not found"))
		return
	}
	if err := tc.DB.Delete(&table).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"id": table.ID})
}

// BookTable -> open a session on an empty table
func (tc *TableController) BookTable(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table id"))
		return
	}

	session, err := tc.Tables.Book(uint(tableID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table booked successfully", gin.H{
		"session": session,
	})
}

// CheckoutTable -> close the open session and return the final bill
func (tc *TableController) CheckoutTable(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table id"))
		return
	}

	session, bill, err := tc.Tables.Checkout(uint(tableID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Checkout completed", gin.H{
		"session":               session,
		"bill":                  bill,
		"grand_total_formatted": utils.FormatCurrency(bill.GrandTotal),
	})
}

// PreviewCheckout -> running total for the open session, nothing persisted
func (tc *TableController) PreviewCheckout(c *gin.Context) {
	tableID, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table id"))
		return
	}

	session, bill, err := tc.Tables.PreviewCheckout(uint(tableID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Checkout preview", gin.H{
		"session":               session,
		"bill":                  bill,
		"grand_total_formatted": utils.FormatCurrency(bill.GrandTotal),
	})
}
