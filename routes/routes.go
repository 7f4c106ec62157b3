package routes

import (
	"order-service/controllers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, orderCtrl *controllers.OrderController, userCtrl *controllers.UserController) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/users", userCtrl.Register)

	orders := router.Group("/orders")
	{
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("", orderCtrl.GetAllOrders)
		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.PATCH("/:id/address", orderCtrl.UpdateShippingAddress)
		orders.POST("/:id/payment/confirm", orderCtrl.ConfirmPayment)
		orders.POST("/:id/payment/process", orderCtrl.ProcessPayment)
		orders.POST("/:id/ship", orderCtrl.ShipOrder)
		orders.POST("/:id/complete", orderCtrl.CompleteOrder)
	}
}
