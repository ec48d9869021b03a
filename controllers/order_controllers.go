package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/database"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

type createOrderRequest struct {
	CustomerName string         `json:"customer_name"`
	TableNo      int            `json:"table_no" binding:"required,min=1"`
	Items        map[string]int `json:"items" binding:"required"`
	DiscountPct  int            `json:"discount_pct" binding:"min=0,max=50"`
	Payment      string         `json:"payment" binding:"required"`
}

// CreateOrder -> build, compute and persist one order
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Service.PlaceOrder(c.Request.Context(),
		req.CustomerName, req.TableNo, req.Items, req.DiscountPct, req.Payment)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("create order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetOrderHistory -> most recent orders, newest insertion first
func (oc *OrderController) GetOrderHistory(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = n
	}

	orders, skipped, err := oc.Service.History(c.Request.Context(), limit)
	if err != nil {
		utils.ErrorLogger.Printf("fetch history: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, bad := range skipped {
		utils.ErrorLogger.Printf("history: skipping row: %v", bad)
	}

	utils.RespondJSON(c, http.StatusOK, "Order history", gin.H{
		"orders":  orders,
		"skipped": skipped,
	})
}

// GetOrderByID -> one order by its public order id
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Service.FindOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.ErrorLogger.Printf("find order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}
