package web

import (
	"net/http"
	"net/url"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"

	"github.com/labstack/echo/v4"
)

func (h *Handler) Home(c echo.Context) error {
	query := productQuery(c, url.Values{
		"page":      {"1"},
		"page_size": {"20"},
		"sort_by":   {domain.SortByCreatedAt},
	})

	var products domain.ProductPage
	if _, err := h.fetch(c, "/api/products?"+query, &products); err != nil {
		logger.Warn("Failed to load products", "error", err)
	}

	var categories struct {
		Categories []string `json:"categories"`
	}
	if _, err := h.fetch(c, "/api/products/categories", &categories); err != nil {
		logger.Warn("Failed to load categories", "error", err)
	}

	var banners []domain.Banner
	if _, err := h.fetch(c, "/api/banners", &banners); err != nil {
		logger.Warn("Failed to load banners", "error", err)
	}

	return h.render(c, "home", "Home", page{
		"Products":         products.Products,
		"Categories":       categories.Categories,
		"Banners":          banners,
		"SelectedCategory": c.QueryParam("category"),
		"SelectedSort":     c.QueryParam("sort_by"),
	})
}

func (h *Handler) ProductDetail(c echo.Context) error {
	id := url.PathEscape(c.Param("id"))

	var product domain.Product
	if _, err := h.fetch(c, "/api/products/"+id, &product); err != nil {
		return h.redirect(c, FlashError, "Product not found", "/")
	}

	var similar struct {
		Products []domain.Product `json:"products"`
	}
	if _, err := h.fetch(c, "/api/products/similar/"+id, &similar); err != nil {
		logger.Warn("Failed to load similar products", "product_id", product.ID, "error", err)
	}

	reviews := domain.ReviewPage{Reviews: []domain.Review{}}
	if _, err := h.fetch(c, "/api/reviews/"+id, &reviews); err != nil {
		logger.Warn("Failed to load reviews", "product_id", product.ID, "error", err)
	}

	return h.render(c, "product", product.Name, page{
		"Product": product,
		"Similar": similar.Products,
		"Reviews": reviews,
	})
}

func (h *Handler) Cart(c echo.Context) error {
	cart := domain.Cart{Items: []domain.CartItem{}}
	if _, err := h.fetch(c, "/api/cart", &cart); err != nil {
		logger.Warn("Failed to load cart", "error", err)
	}

	return h.render(c, "cart", "Cart", page{"Cart": cart})
}

func (h *Handler) Checkout(c echo.Context) error {
	var cart domain.Cart
	if _, err := h.fetch(c, "/api/cart", &cart); err != nil {
		return h.redirect(c, FlashError, "Error loading cart", "/cart")
	}
	if len(cart.Items) == 0 {
		return h.redirect(c, FlashError, "Your cart is empty", "/")
	}

	var addresses []domain.Address
	if _, err := h.fetch(c, "/api/profile/addresses", &addresses); err != nil {
		logger.Warn("Failed to load addresses", "error", err)
	}

	return h.render(c, "checkout", "Checkout", page{
		"Cart":      cart,
		"Addresses": addresses,
	})
}

func (h *Handler) OrderDetail(c echo.Context) error {
	var order domain.Order
	resp, err := h.call(c, http.MethodGet, "/api/orders/"+url.PathEscape(c.Param("id")), nil)
	if err != nil {
		logger.Error("Backend unreachable", "error", err)
		return h.redirect(c, FlashError, "Unable to connect to server", "/profile")
	}
	if !resp.OK() {
		return h.redirect(c, FlashError, "Order error: "+resp.Message("Order not found"), "/profile")
	}
	if err := resp.Decode(&order); err != nil {
		return h.redirect(c, FlashError, "Order not found", "/profile")
	}

	return h.render(c, "order", "Order "+order.OrderNumber, page{"Order": order})
}

func (h *Handler) Profile(c echo.Context) error {
	var user domain.User
	if _, err := h.fetch(c, "/api/profile", &user); err != nil {
		return h.redirect(c, FlashError, "Error loading profile", "/")
	}

	var addresses []domain.Address
	if _, err := h.fetch(c, "/api/profile/addresses", &addresses); err != nil {
		logger.Warn("Failed to load addresses", "error", err)
	}

	var orders []domain.Order
	if _, err := h.fetch(c, "/api/orders", &orders); err != nil {
		logger.Warn("Failed to load orders", "error", err)
	}

	return h.render(c, "profile", "Profile", page{
		"User":      user,
		"Addresses": addresses,
		"Orders":    orders,
	})
}

func (h *Handler) LoginPage(c echo.Context) error {
	return h.render(c, "login", "Login", page{"Next": c.QueryParam("next")})
}

func (h *Handler) Login(c echo.Context) error {
	resp, err := h.backend.Do(c.Request().Context(), http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    c.FormValue("email"),
		"password": c.FormValue("password"),
	})

	var pair domain.TokenPair
	if err != nil || !resp.OK() || resp.Decode(&pair) != nil {
		if err != nil {
			logger.Error("Backend unreachable", "error", err)
		}
		h.sessions.AddFlash(c, FlashError, "Invalid email or password")
		return h.render(c, "login", "Login", page{"Next": c.QueryParam("next")})
	}

	h.sessions.SetTokens(c, pair.AccessToken, pair.RefreshToken)
	return h.redirect(c, FlashSuccess, "Login successful!", safeNext(c.QueryParam("next")))
}

func (h *Handler) SignupPage(c echo.Context) error {
	return h.render(c, "signup", "Sign up", nil)
}

func (h *Handler) Signup(c echo.Context) error {
	resp, err := h.backend.Do(c.Request().Context(), http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":     c.FormValue("email"),
		"password":  c.FormValue("password"),
		"full_name": c.FormValue("full_name"),
		"phone":     c.FormValue("phone"),
	})
	if err != nil {
		logger.Error("Backend unreachable", "error", err)
		h.sessions.AddFlash(c, FlashError, "Registration failed")
		return h.render(c, "signup", "Sign up", nil)
	}

	var pair domain.TokenPair
	if resp.Status != http.StatusCreated || resp.Decode(&pair) != nil {
		h.sessions.AddFlash(c, FlashError, resp.Message("Registration failed"))
		return h.render(c, "signup", "Sign up", nil)
	}

	h.sessions.SetTokens(c, pair.AccessToken, pair.RefreshToken)
	return h.redirect(c, FlashSuccess, "Account created successfully!", "/")
}

func (h *Handler) Logout(c echo.Context) error {
	if token := h.sessions.AccessToken(c); token != "" {
		if _, err := h.backend.Do(c.Request().Context(), http.MethodPost, "/api/auth/logout", token, nil); err != nil {
			logger.Warn("Failed to revoke token on logout", "error", err)
		}
	}

	h.sessions.Clear(c)
	return h.redirect(c, FlashSuccess, "Logged out successfully", "/")
}
