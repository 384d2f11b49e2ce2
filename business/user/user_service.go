package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"agamOrganics/domain"
	"agamOrganics/pkg/logger"
	"agamOrganics/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error
}

// NotificationRepository contract interface
type NotificationRepository interface {
	SendEmail(ctx context.Context, toName, toEmail, subject, message string) error
}

type TokenIssuer interface {
	Generate(userID, email, tokenType string) (string, error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// TokenStore records issued tokens. It is optional.
type TokenStore interface {
	StoreToken(ctx context.Context, token, userID, tokenType string, expiresAt time.Time) error
	RevokeToken(ctx context.Context, token string) error
}

type SignupInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

type userService struct {
	userRepo   UserRepository
	validate   *validator.Validate
	notifRepo  NotificationRepository
	tokens     TokenIssuer
	tokenStore TokenStore
}

const (
	SubjectWelcome   = "Welcome to Agam Organics"
	EmailBodyWelcome = `Hello %v,</br></br>Your Agam Organics account is ready. Happy shopping!`
)

var errBadCredentials = domain.Errorf(domain.ErrUnauthorized, "incorrect email or password")

func NewUserService(
	userRepo UserRepository,
	validate *validator.Validate,
	notifRepo NotificationRepository,
	tokens TokenIssuer,
	tokenStore TokenStore,
) *userService {
	return &userService{
		userRepo:   userRepo,
		validate:   validate,
		notifRepo:  notifRepo,
		tokens:     tokens,
		tokenStore: tokenStore,
	}
}

func (s *userService) Signup(ctx context.Context, in SignupInput) (domain.TokenPair, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.validate.Var(in.Email, "required,email"); err != nil {
		return domain.TokenPair{}, domain.Errorf(domain.ErrBadRequest, "invalid email format")
	}
	if err := s.validate.Var(in.Password, "required,min=6"); err != nil {
		return domain.TokenPair{}, domain.Errorf(domain.ErrBadRequest, "password must be at least 6 characters")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return domain.TokenPair{}, domain.Errorf(domain.ErrBadRequest, "full name is required")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return domain.TokenPair{}, domain.Errorf(domain.ErrBadRequest, "phone is required")
	}

	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		logger.Warn("Signup with existing email", "email", in.Email)
		return domain.TokenPair{}, domain.Errorf(domain.ErrConflict, "email already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.Error("Failed to look up email", "error", err)
		return domain.TokenPair{}, err
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Error("Failed to hash password", "error", err)
		return domain.TokenPair{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		Email:        in.Email,
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(passwordHash),
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", "error", err)
		return domain.TokenPair{}, err
	}

	s.sendWelcome(ctx, newUser)

	return s.issue(ctx, newUser.ID, newUser.Email)
}

// sendWelcome is best effort; signup never fails because of it.
func (s *userService) sendWelcome(ctx context.Context, u domain.User) {
	if s.notifRepo == nil {
		return
	}
	if err := s.notifRepo.SendEmail(ctx, u.FullName, u.Email, SubjectWelcome, fmt.Sprintf(EmailBodyWelcome, u.FullName)); err != nil {
		logger.Warn("Failed to send welcome email", "user_id", u.ID, "error", err)
	}
}

func (s *userService) Login(ctx context.Context, email, password string) (domain.TokenPair, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.TokenPair{}, errBadCredentials
		}
		logger.Error("Failed to find user for login", "error", err)
		return domain.TokenPair{}, err
	}

	if !utils.CheckPassword(password, user.PasswordHash) {
		logger.Warn("User password incorrect", "user_id", user.ID)
		return domain.TokenPair{}, errBadCredentials
	}

	return s.issue(ctx, user.ID, user.Email)
}

// Refresh reissues both tokens for an already authenticated identity.
func (s *userService) Refresh(ctx context.Context, userID, email string) (domain.TokenPair, error) {
	return s.issue(ctx, userID, email)
}

func (s *userService) Logout(ctx context.Context, token string) error {
	if s.tokenStore == nil {
		return nil
	}

	if err := s.tokenStore.RevokeToken(ctx, token); err != nil {
		logger.Error("Failed to revoke token", "error", err)
		return err
	}

	return nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user by ID", "user_id", userID, "error", err)
		return domain.User{}, err
	}

	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (domain.User, error) {
	if update.Empty() {
		return domain.User{}, domain.Errorf(domain.ErrBadRequest, "no data to update")
	}

	if update.FullName != nil && strings.TrimSpace(*update.FullName) == "" {
		return domain.User{}, domain.Errorf(domain.ErrBadRequest, "full name cannot be empty")
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, update); err != nil {
		logger.Error("Failed to update user", "user_id", userID, "error", err)
		return domain.User{}, err
	}

	return s.userRepo.FindByID(ctx, userID)
}

func (s *userService) issue(ctx context.Context, userID, email string) (domain.TokenPair, error) {
	access, err := s.tokens.Generate(userID, email, utils.TokenTypeAccess)
	if err != nil {
		logger.Error("Failed to generate access token", "error", err)
		return domain.TokenPair{}, errors.New("failed to generate token")
	}

	refresh, err := s.tokens.Generate(userID, email, utils.TokenTypeRefresh)
	if err != nil {
		logger.Error("Failed to generate refresh token", "error", err)
		return domain.TokenPair{}, errors.New("failed to generate token")
	}

	if s.tokenStore != nil {
		now := time.Now()
		if err := s.tokenStore.StoreToken(ctx, access, userID, utils.TokenTypeAccess, now.Add(s.tokens.AccessTTL())); err != nil {
			logger.Error("Failed to store access token", "error", err)
			return domain.TokenPair{}, err
		}
		if err := s.tokenStore.StoreToken(ctx, refresh, userID, utils.TokenTypeRefresh, now.Add(s.tokens.RefreshTTL())); err != nil {
			logger.Error("Failed to store refresh token", "error", err)
			return domain.TokenPair{}, err
		}
	}

	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}
