package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/cafe-pos/controllers"
	"github.com/yeremiapane/cafe-pos/middlewares"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/services"
)

func SetupRouter(svc *services.OrderService, catalog models.Catalog) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	orderCtrl := controllers.NewOrderController(svc)
	menuCtrl := controllers.NewMenuController(catalog)
	receiptCtrl := controllers.NewReceiptController(svc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/menu", menuCtrl.GetMenu)

	// Rate limiter on the submit action only
	submit := r.Group("/")
	submit.Use(middlewares.NewSubmitRateLimiter())
	{
		submit.POST("/orders", orderCtrl.CreateOrder)
	}

	r.GET("/orders", orderCtrl.GetOrderHistory)
	r.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	r.GET("/orders/:order_id/receipt", receiptCtrl.DownloadReceipt)

	return r
}
