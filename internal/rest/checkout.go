package rest

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	validate      *validator.Validate
	ordersService OrdersService
}

func NewCheckoutHandler(ordersService OrdersService) *CheckoutHandler {
	return &CheckoutHandler{
		validate:      validator.New(),
		ordersService: ordersService,
	}
}

type GatewayOrderRequest struct {
	AddressID string `json:"address_id" validate:"required,uuid"`
}

type GatewayOrderResponse struct {
	Success         bool    `json:"success"`
	RazorpayKey     string  `json:"razorpay_key"`
	Amount          int64   `json:"amount"`
	Currency        string  `json:"currency"`
	RazorpayOrderID string  `json:"razorpay_order_id"`
	TotalAmount     float64 `json:"total_amount"`
}

type CheckoutResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// RazorpayOrder opens a gateway order for the current cart total.
func (h *CheckoutHandler) RazorpayOrder(c echo.Context) error {
	var request GatewayOrderRequest

	if err := c.Bind(&request); err != nil {
		return badRequest(c, err)
	}

	if err := h.validate.Struct(&request); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), CheckoutTimeout)
	defer cancel()

	g, err := h.ordersService.CreateGatewayOrder(ctx, currentUserID(c), request.AddressID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, GatewayOrderResponse{
		Success:         true,
		RazorpayKey:     g.RazorpayKey,
		Amount:          g.Amount,
		Currency:        g.Currency,
		RazorpayOrderID: g.RazorpayOrderID,
		TotalAmount:     g.TotalAmount,
	})
}

func (h *CheckoutHandler) CreateOrder(c echo.Context) error {
	var request OrderInput

	if err := c.Bind(&request); err != nil {
		return badRequest(c, err)
	}

	if err := h.validate.Struct(&request); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), CheckoutTimeout)
	defer cancel()

	order, err := h.ordersService.PlaceOrder(ctx, request.placeOrder(currentUserID(c)))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutResponse{
		Success:     true,
		Message:     "Order created successfully",
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
	})
}
