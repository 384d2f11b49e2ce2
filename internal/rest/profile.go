package rest

import (
	"context"
	"net/http"
	"time"

	"agamOrganics/business/user"
	"agamOrganics/domain"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (domain.User, error)
}

type AddressService interface {
	ListAddresses(ctx context.Context, userID string) ([]domain.Address, error)
	CreateAddress(ctx context.Context, userID string, in user.AddressInput) (domain.Address, error)
	UpdateAddress(ctx context.Context, userID, id string, in user.AddressInput) (domain.Address, error)
	DeleteAddress(ctx context.Context, userID, id string) error
}

type ProfileHandler struct {
	profileService ProfileService
	addressService AddressService
	validator      *validator.Validate
}

func NewProfileHandler(profileService ProfileService, addressService AddressService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		addressService: addressService,
		validator:      validator.New(),
	}
}

type ProfileUpdateRequest struct {
	FullName          *string `json:"full_name"`
	Phone             *string `json:"phone"`
	DateOfBirth       *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfAnniversary *string `json:"date_of_anniversary" validate:"omitempty,datetime=2006-01-02"`
}

type AddressRequest struct {
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Pincode      string `json:"pincode" validate:"required"`
	IsDefault    bool   `json:"is_default"`
}

func (r AddressRequest) input() user.AddressInput {
	return user.AddressInput{
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		Pincode:      r.Pincode,
		IsDefault:    r.IsDefault,
	}
}

func parseDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	u, err := h.profileService.GetProfile(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, u)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req ProfileUpdateRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	if err := h.validator.Struct(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	u, err := h.profileService.UpdateProfile(ctx, currentUserID(c), domain.ProfileUpdate{
		FullName:          req.FullName,
		Phone:             req.Phone,
		DateOfBirth:       parseDate(req.DateOfBirth),
		DateOfAnniversary: parseDate(req.DateOfAnniversary),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, u)
}

func (h *ProfileHandler) ListAddresses(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	addresses, err := h.addressService.ListAddresses(ctx, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, addresses)
}

func (h *ProfileHandler) CreateAddress(c echo.Context) error {
	var req AddressRequest

	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	if err := h.validator.Struct(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	address, err := h.addressService.CreateAddress(ctx, currentUserID(c), req.input())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, address)
}

func (h *ProfileHandler) UpdateAddress(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	if err := h.validator.Struct(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	address, err := h.addressService.UpdateAddress(ctx, currentUserID(c), id, req.input())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, address)
}

func (h *ProfileHandler) DeleteAddress(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), defaultTimeout)
	defer cancel()

	if err := h.addressService.DeleteAddress(ctx, currentUserID(c), id); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Address deleted"})
}
