package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"cafe-pos/services"
	"cafe-pos/utils"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GetAllOrders -> orders newest first, filterable by table, session,
// status and creation date range.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var filter services.OrderFilter

	if v := c.Query("table_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table_id"))
			return
		}
		filter.TableID = uint(id)
	}
	if v := c.Query("table_session_id"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid table_session_id"))
			return
		}
		filter.TableSessionID = uint(id)
	}
	filter.Status = c.Query("status")
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid start_date"))
			return
		}
		filter.StartDate = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("invalid end_date"))
			return
		}
		filter.EndDate = &t
	}

	orders, err := oc.Orders.ListOrders(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

// CreateOrder -> attach a consumption record to an open session. Prices
// are snapshotted from the catalog at this moment.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		TableSessionID uint                      `json:"table_session_id" binding:"required"`
		Items          []services.OrderItemInput `json:"items" binding:"required"`
		DiscountRate   float64                   `json:"discount_rate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.CreateOrder(req.TableSessionID, req.Items, req.DiscountRate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrderStatus -> workflow status only, no billing effect
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Orders.UpdateStatus(uint(orderID), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}
