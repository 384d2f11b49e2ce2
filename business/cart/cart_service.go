package cart

import (
	"context"
	"errors"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
	"agamOrganics/pkg/money"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartLine, error)
	FindByProduct(ctx context.Context, userID, productID string) (domain.CartLine, error)
	FindForUser(ctx context.Context, userID, id string) (domain.CartLine, error)
	Create(ctx context.Context, line *domain.CartLine) error
	UpdateQuantity(ctx context.Context, userID, id string, qty int) error
	Delete(ctx context.Context, userID, id string) error
	Clear(ctx context.Context, userID string) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

type CartService struct {
	cartRepo    CartRepository
	productRepo ProductRepository
}

func NewCartService(cartRepo CartRepository, productRepo ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Summarize prices every line at the product's effective price.
// Lines whose product no longer exists are skipped.
func Summarize(lines []domain.CartLine) domain.Cart {
	cart := domain.Cart{Items: []domain.CartItem{}}

	var subtotals, savings []float64
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		p := *line.Product
		effective := p.EffectivePrice()
		subtotal := money.Line(effective, line.Quantity)

		cart.Items = append(cart.Items, domain.CartItem{
			ID:           line.ID,
			ProductID:    line.ProductID,
			ProductName:  p.Name,
			ProductImage: p.ImageURL,
			Price:        effective,
			Quantity:     line.Quantity,
			Subtotal:     subtotal,
		})
		subtotals = append(subtotals, subtotal)
		savings = append(savings, money.Savings(p.Price, effective, line.Quantity))
	}

	cart.TotalItems = len(cart.Items)
	cart.TotalPrice = money.Sum(subtotals...)
	cart.TotalSavings = money.Sum(savings...)
	cart.FinalTotal = cart.TotalPrice

	return cart
}

func (s *CartService) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	lines, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load cart", "user_id", userID, "error", err)
		return domain.Cart{}, err
	}

	return Summarize(lines), nil
}

// AddToCart sums quantities when the product is already in the cart.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string, qty int) (domain.CartLine, error) {
	if qty <= 0 {
		return domain.CartLine{}, domain.Errorf(domain.ErrBadRequest, "quantity must be greater than 0")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return domain.CartLine{}, err
	}

	existing, err := s.cartRepo.FindByProduct(ctx, userID, productID)
	switch {
	case err == nil:
		newQty := existing.Quantity + qty
		if newQty > product.Stock {
			return domain.CartLine{}, domain.Errorf(domain.ErrBadRequest, "only %d items available in stock", product.Stock)
		}
		if err := s.cartRepo.UpdateQuantity(ctx, userID, existing.ID, newQty); err != nil {
			logger.Error("Failed to update cart quantity", "cart_item_id", existing.ID, "error", err)
			return domain.CartLine{}, err
		}
		existing.Quantity = newQty
		return existing, nil
	case !errors.Is(err, domain.ErrNotFound):
		logger.Error("Failed to look up cart line", "user_id", userID, "error", err)
		return domain.CartLine{}, err
	}

	if qty > product.Stock {
		return domain.CartLine{}, domain.Errorf(domain.ErrBadRequest, "only %d items available in stock", product.Stock)
	}

	line := domain.CartLine{UserID: userID, ProductID: productID, Quantity: qty}
	if err := s.cartRepo.Create(ctx, &line); err != nil {
		logger.Error("Failed to add to cart", "user_id", userID, "error", err)
		return domain.CartLine{}, err
	}

	return line, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, cartItemID string, qty int) error {
	if qty <= 0 {
		return domain.Errorf(domain.ErrBadRequest, "quantity must be greater than 0")
	}

	line, err := s.cartRepo.FindForUser(ctx, userID, cartItemID)
	if err != nil {
		return err
	}

	product, err := s.productRepo.FindByID(ctx, line.ProductID)
	if err != nil {
		return err
	}
	if qty > product.Stock {
		return domain.Errorf(domain.ErrBadRequest, "only %d items available in stock", product.Stock)
	}

	return s.cartRepo.UpdateQuantity(ctx, userID, cartItemID, qty)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, cartItemID string) error {
	return s.cartRepo.Delete(ctx, userID, cartItemID)
}

func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		logger.Error("Failed to clear cart", "user_id", userID, "error", err)
		return err
	}

	return nil
}
