package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"order-service/models"
	"order-service/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (ctrl *OrderController) getPaginationParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > 100 {
		limit = 100
	}

	return page, limit
}

func (ctrl *OrderController) orderID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid order ID",
		})
		return 0, false
	}
	return id, true
}

func (ctrl *OrderController) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound), errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidPIN):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}

// @Summary Create order
// @Description Create a new order for a user, identified by email
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Order payload"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// @Summary List orders
// @Description Get all orders with pagination
// @Tags Orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /orders [get]
func (ctrl *OrderController) GetAllOrders(c *gin.Context) {
	page, limit := ctrl.getPaginationParams(c, 10)

	response, err := ctrl.service.ListOrders(c.Request.Context(), page, limit)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get order
// @Description Get one order with its items
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrderByID(c *gin.Context) {
	id, ok := ctrl.orderID(c)
	if !ok {
		return
	}

	order, err := ctrl.service.GetOrder(c.Request.Context(), id)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}

// @Summary Update shipping address
// @Description Set the shipping address and advance the order to ADDRESS_FILLED
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.UpdateAddressRequest true "Address payload"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/address [patch]
func (ctrl *OrderController) UpdateShippingAddress(c *gin.Context) {
	id, ok := ctrl.orderID(c)
	if !ok {
		return
	}

	var req models.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.service.UpdateShippingAddress(c.Request.Context(), id, req.Address)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Shipping address updated",
		Data:    order,
	})
}

// @Summary Confirm payment
// @Description Advance the order to PAYMENT_PENDING
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/payment/confirm [post]
func (ctrl *OrderController) ConfirmPayment(c *gin.Context) {
	id, ok := ctrl.orderID(c)
	if !ok {
		return
	}

	order, err := ctrl.service.ConfirmPayment(c.Request.Context(), id)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment confirmed",
		Data:    order,
	})
}

// @Summary Process payment
// @Description Validate the payment PIN and advance the order to PAYMENT_CONFIRMED
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body models.ProcessPaymentRequest true "PIN payload"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/payment/process [post]
func (ctrl *OrderController) ProcessPayment(c *gin.Context) {
	id, ok := ctrl.orderID(c)
	if !ok {
		return
	}

	var req models.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	order, err := ctrl.service.ProcessPayment(c.Request.Context(), id, req.PIN)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Payment processed",
		Data:    order,
	})
}

// @Summary Ship order
// @Description Advance the order to SHIPPED
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/ship [post]
func (ctrl *OrderController) ShipOrder(c *gin.Context) {
	id, ok := ctrl.orderID(c)
	if !ok {
		return
	}

	order, err := ctrl.service.ShipOrder(c.Request.Context(), id)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order shipped",
		Data:    order,
	})
}

// @Summary Complete order
// @Description Advance the order to COMPLETED
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/complete [post]
func (ctrl *OrderController) CompleteOrder(c *gin.Context) {
	id, ok := ctrl.orderID(c)
	if !ok {
		return
	}

	order, err := ctrl.service.CompleteOrder(c.Request.Context(), id)
	if err != nil {
		ctrl.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order completed",
		Data:    order,
	})
}
