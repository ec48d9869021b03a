package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/database"
	"github.com/yeremiapane/cafe-pos/services"
	"github.com/yeremiapane/cafe-pos/utils"
)

type ReceiptController struct {
	Service *services.OrderService
}

func NewReceiptController(svc *services.OrderService) *ReceiptController {
	return &ReceiptController{Service: svc}
}

// DownloadReceipt -> regenerate the PDF bill for one persisted order
func (rc *ReceiptController) DownloadReceipt(c *gin.Context) {
	order, err := rc.Service.FindOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		if errors.Is(err, database.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.ErrorLogger.Printf("receipt lookup: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pdfBytes, err := services.RenderReceiptPDF(order)
	if err != nil {
		utils.ErrorLogger.Printf("receipt render: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", order.OrderID))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
