package rest

import (
	"context"
	"net/http"

	"agamOrganics/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
	}

	OrdersService interface {
		PlaceOrder(ctx context.Context, in domain.PlaceOrderInput) (domain.Order, error)
		CreateGatewayOrder(ctx context.Context, userID, addressID string) (domain.GatewayOrder, error)
		ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
		GetOrder(ctx context.Context, userID, id string) (domain.Order, error)
		CancelOrder(ctx context.Context, userID, id string) (domain.Order, error)
	}

	OrderInput struct {
		AddressID      string                 `json:"address_id" validate:"required,uuid"`
		PaymentMethod  string                 `json:"payment_method" validate:"required"`
		PaymentDetails *domain.PaymentDetails `json:"payment_details"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
	}
}

func (in OrderInput) placeOrder(userID string) domain.PlaceOrderInput {
	return domain.PlaceOrderInput{
		UserID:         userID,
		AddressID:      in.AddressID,
		PaymentMethod:  in.PaymentMethod,
		PaymentDetails: in.PaymentDetails,
	}
}

// CreateOrder places an order from the cart and returns it in full.
func (h *OrdersHandler) CreateOrder(c echo.Context) error {
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

	return c.JSON(http.StatusCreated, order)
}

func (h *OrdersHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	orders, err := h.ordersService.ListOrders(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrderByID(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	order, err := h.ordersService.GetOrder(ctx, currentUserID(c), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, order)
}

func (h *OrdersHandler) CancelOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	if _, err := h.ordersService.CancelOrder(ctx, currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Order cancelled successfully"})
}
