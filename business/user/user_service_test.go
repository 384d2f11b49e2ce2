package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"agamOrganics/business/user"
	"agamOrganics/domain"
	"agamOrganics/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type fakeUserRepo struct {
	byID map[string]domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]domain.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if u.ID == "" {
		u.ID = "user-" + u.Email
	}
	f.byID[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, domain.Errorf(domain.ErrNotFound, "user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.Errorf(domain.ErrNotFound, "user not found")
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error {
	u, ok := f.byID[id]
	if !ok {
		return domain.Errorf(domain.ErrNotFound, "user not found")
	}
	if update.FullName != nil {
		u.FullName = *update.FullName
	}
	if update.Phone != nil {
		u.Phone = *update.Phone
	}
	f.byID[id] = u
	return nil
}

type fakeNotif struct {
	sent int
	err  error
}

func (f *fakeNotif) SendEmail(ctx context.Context, toName, toEmail, subject, message string) error {
	f.sent++
	return f.err
}

type fakeTokenStore struct {
	stored  map[string]string
	revoked []string
}

func (f *fakeTokenStore) StoreToken(ctx context.Context, token, userID, tokenType string, expiresAt time.Time) error {
	if f.stored == nil {
		f.stored = map[string]string{}
	}
	f.stored[token] = tokenType
	return nil
}

func (f *fakeTokenStore) RevokeToken(ctx context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	return nil
}

func newTokens(t *testing.T) *utils.TokenManager {
	t.Helper()
	m, err := utils.NewTokenManager("secret", "HS256", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("failed to build token manager: %v", err)
	}
	return m
}

func TestSignupIssuesTokens(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	notif := &fakeNotif{}
	store := &fakeTokenStore{}
	tokens := newTokens(t)
	svc := user.NewUserService(repo, validator.New(), notif, tokens, store)

	pair, err := svc.Signup(context.Background(), user.SignupInput{
		Email: "Asha@Example.com", Password: "secret1", FullName: "Asha", Phone: "9999999999",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair.TokenType != "bearer" || pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("unexpected pair %+v", pair)
	}

	claims, err := tokens.Parse(pair.AccessToken)
	if err != nil {
		t.Fatalf("expected parsable token, got %v", err)
	}
	if claims.Email != "asha@example.com" || claims.Type != utils.TokenTypeAccess {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if len(store.stored) != 2 {
		t.Fatalf("expected both tokens recorded, got %d", len(store.stored))
	}
	if notif.sent != 1 {
		t.Fatalf("expected welcome email, got %d", notif.sent)
	}

	stored, _ := repo.FindByEmail(context.Background(), "asha@example.com")
	if stored.PasswordHash == "secret1" || !utils.CheckPassword("secret1", stored.PasswordHash) {
		t.Fatal("expected bcrypt hash to be stored")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := user.NewUserService(repo, validator.New(), &fakeNotif{}, newTokens(t), nil)
	in := user.SignupInput{Email: "a@example.com", Password: "secret1", FullName: "A", Phone: "1"}

	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSignupValidation(t *testing.T) {
	t.Parallel()

	svc := user.NewUserService(newFakeUserRepo(), validator.New(), &fakeNotif{}, newTokens(t), nil)

	cases := []user.SignupInput{
		{Email: "not-an-email", Password: "secret1", FullName: "A", Phone: "1"},
		{Email: "a@example.com", Password: "123", FullName: "A", Phone: "1"},
		{Email: "a@example.com", Password: "secret1", FullName: "", Phone: "1"},
		{Email: "a@example.com", Password: "secret1", FullName: "A", Phone: ""},
	}
	for _, in := range cases {
		if _, err := svc.Signup(context.Background(), in); !errors.Is(err, domain.ErrBadRequest) {
			t.Fatalf("expected ErrBadRequest for %+v, got %v", in, err)
		}
	}
}

func TestSignupWithoutMailer(t *testing.T) {
	t.Parallel()

	svc := user.NewUserService(newFakeUserRepo(), validator.New(), nil, newTokens(t), nil)

	pair, err := svc.Signup(context.Background(), user.SignupInput{
		Email: "b@example.com", Password: "secret1", FullName: "B", Phone: "2",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pair.AccessToken == "" {
		t.Fatalf("expected tokens without a mailer, got %+v", pair)
	}
}

func TestSignupSurvivesMailerFailure(t *testing.T) {
	t.Parallel()

	svc := user.NewUserService(newFakeUserRepo(), validator.New(), &fakeNotif{err: errors.New("smtp down")}, newTokens(t), nil)
	_, err := svc.Signup(context.Background(), user.SignupInput{Email: "a@example.com", Password: "secret1", FullName: "A", Phone: "1"})
	if err != nil {
		t.Fatalf("mail failure must not fail signup, got %v", err)
	}
}

func TestLoginGenericFailure(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := user.NewUserService(repo, validator.New(), &fakeNotif{}, newTokens(t), nil)
	_, _ = svc.Signup(context.Background(), user.SignupInput{Email: "a@example.com", Password: "secret1", FullName: "A", Phone: "1"})

	_, errWrong := svc.Login(context.Background(), "a@example.com", "wrong")
	_, errUnknown := svc.Login(context.Background(), "b@example.com", "secret1")

	if !errors.Is(errWrong, domain.ErrUnauthorized) || !errors.Is(errUnknown, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v and %v", errWrong, errUnknown)
	}
	if errWrong.Error() != errUnknown.Error() {
		t.Fatalf("expected identical messages, got %q and %q", errWrong.Error(), errUnknown.Error())
	}

	if _, err := svc.Login(context.Background(), "a@example.com", "secret1"); err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}
}

func TestLogoutRevokes(t *testing.T) {
	t.Parallel()

	store := &fakeTokenStore{}
	svc := user.NewUserService(newFakeUserRepo(), validator.New(), &fakeNotif{}, newTokens(t), store)

	if err := svc.Logout(context.Background(), "tok"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(store.revoked) != 1 || store.revoked[0] != "tok" {
		t.Fatalf("expected token revoked, got %v", store.revoked)
	}
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := user.NewUserService(repo, validator.New(), &fakeNotif{}, newTokens(t), nil)
	_, _ = svc.Signup(context.Background(), user.SignupInput{Email: "a@example.com", Password: "secret1", FullName: "A", Phone: "1"})
	u, _ := repo.FindByEmail(context.Background(), "a@example.com")

	if _, err := svc.UpdateProfile(context.Background(), u.ID, domain.ProfileUpdate{}); !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for empty update, got %v", err)
	}

	name := "Asha K"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, domain.ProfileUpdate{FullName: &name})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if updated.FullName != "Asha K" || updated.Phone != "1" {
		t.Fatalf("unexpected profile %+v", updated)
	}
}
