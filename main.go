package main

import (
	"context"
	"log"

	"order-service/config"
	"order-service/consumers"
	"order-service/controllers"
	_ "order-service/docs"
	"order-service/libs"
	"order-service/middleware"
	"order-service/repositories"
	"order-service/routes"
	"order-service/services"

	"github.com/gin-gonic/gin"
)

// @title Order Service API
// @version 1.0
// @description Order lifecycle management: creation, address capture, payment and shipment.
// @BasePath /
func main() {

	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db := config.ConnectDB()
	defer db.Close()

	rdb := config.ConnectRedis()
	defer rdb.Close()

	orderRepo := repositories.NewOrderRepository(db)
	userRepo := repositories.NewUserRepository(db)
	cache := libs.NewSnapshotCache(rdb)
	stream := libs.NewEventStream(rdb, config.AppConfig.OrdersChannel)

	orderService := services.NewOrderService(orderRepo, userRepo, cache, stream)
	userService := services.NewUserService(userRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := consumers.NewOrderConsumer(orderRepo, cache)
	go consumer.Run(ctx, stream.Subscribe(ctx))

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, controllers.NewOrderController(orderService), controllers.NewUserController(userService))

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
