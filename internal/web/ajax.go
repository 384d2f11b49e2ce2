package web

import (
	"errors"
	"net/http"
	"net/url"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"

	"github.com/labstack/echo/v4"
)

// failure renders a proxied error, 502 when the API could not be reached.
func (h *Handler) failure(c echo.Context, resp BackendResponse, err error, fallback string) error {
	if err != nil {
		if errors.Is(err, ErrBackendUnavailable) {
			logger.Error("Backend unreachable", "path", c.Path(), "error", err)
			return c.JSON(http.StatusBadGateway, AjaxResponse{Message: "Unable to connect to server"})
		}
		return c.JSON(http.StatusBadRequest, AjaxResponse{Message: fallback})
	}

	status := resp.Status
	if status < http.StatusBadRequest {
		status = http.StatusBadGateway
	}
	return c.JSON(status, AjaxResponse{Message: resp.Message(fallback)})
}

// passThrough relays the API reply unchanged when it succeeded.
func (h *Handler) passThrough(c echo.Context, method, path string, withBody bool, fallback string) error {
	var body any
	if withBody {
		raw, err := readBody(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, AjaxResponse{Message: "Invalid request body"})
		}
		if raw != nil {
			body = raw
		}
	}

	resp, err := h.call(c, method, path, body)
	if err != nil || !resp.OK() {
		return h.failure(c, resp, err, fallback)
	}

	return c.JSONBlob(resp.Status, resp.Body)
}

// acknowledge relays a mutation and answers with a success flag only.
func (h *Handler) acknowledge(c echo.Context, method, path string, withBody bool, message, fallback string) error {
	var body any
	if withBody {
		raw, err := readBody(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, AjaxResponse{Message: "Invalid request body"})
		}
		if raw != nil {
			body = raw
		}
	}

	resp, err := h.call(c, method, path, body)
	if err != nil || !resp.OK() {
		return h.failure(c, resp, err, fallback)
	}

	return c.JSON(http.StatusOK, AjaxResponse{Success: true, Message: message})
}

func (h *Handler) APIProducts(c echo.Context) error {
	query := productQuery(c, url.Values{
		"page":      {"1"},
		"page_size": {"20"},
		"sort_by":   {domain.SortByCreatedAt},
	})
	return h.passThrough(c, http.MethodGet, "/api/products?"+query, false, "Failed to load products")
}

func (h *Handler) APICart(c echo.Context) error {
	return h.passThrough(c, http.MethodGet, "/api/cart", false, "Failed to fetch cart")
}

func (h *Handler) APIAddToCart(c echo.Context) error {
	return h.acknowledge(c, http.MethodPost, "/api/cart/add", true, "Added to cart", "Failed to add to cart")
}

func (h *Handler) APIUpdateCart(c echo.Context) error {
	path := "/api/cart/update/" + url.PathEscape(c.Param("id"))
	return h.acknowledge(c, http.MethodPut, path, true, "", "Failed to update cart")
}

func (h *Handler) APIRemoveFromCart(c echo.Context) error {
	path := "/api/cart/remove/" + url.PathEscape(c.Param("id"))
	return h.acknowledge(c, http.MethodDelete, path, false, "", "Failed to remove item")
}

func (h *Handler) APIRazorpayOrder(c echo.Context) error {
	return h.passThrough(c, http.MethodPost, "/api/checkout/razorpay-order", true, "Failed to create order")
}

func (h *Handler) APICreateOrder(c echo.Context) error {
	return h.passThrough(c, http.MethodPost, "/api/checkout/create-order", true, "Failed to create order")
}

func (h *Handler) APIAddAddress(c echo.Context) error {
	return h.passThrough(c, http.MethodPost, "/api/profile/addresses", true, "Failed to add address")
}

func (h *Handler) APICancelOrder(c echo.Context) error {
	path := "/api/orders/" + url.PathEscape(c.Param("id")) + "/cancel"
	return h.passThrough(c, http.MethodPut, path, false, "Failed to cancel order")
}
