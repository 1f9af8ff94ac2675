package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/entities"
	"recipe-catalog-api/internal/middleware"
)

type fakeUserService struct {
	user *entities.User
	key  string
}

func (s *fakeUserService) Register(context.Context, domain.RegisterRequest) (domain.RegisterResponse, error) {
	return domain.RegisterResponse{}, nil
}

func (s *fakeUserService) CreateSuperuser(context.Context, string, string, string) error {
	return nil
}

func (s *fakeUserService) Login(context.Context, domain.LoginRequest) (domain.LoginResponse, error) {
	return domain.LoginResponse{}, nil
}

func (s *fakeUserService) Me(context.Context, string) (domain.MeResponse, error) {
	return domain.MeResponse{}, nil
}

func (s *fakeUserService) UpdateUser(context.Context, string, domain.UpdateUserRequest) (domain.MeResponse, error) {
	return domain.MeResponse{}, nil
}

func (s *fakeUserService) ForgotPassword(context.Context, domain.ForgotPasswordRequest) error {
	return nil
}

func (s *fakeUserService) ResetPassword(context.Context, domain.ResetPasswordRequest) error {
	return nil
}

func (s *fakeUserService) GetUserByToken(_ context.Context, key string) (*entities.User, error) {
	if s.user == nil || key != s.key {
		return nil, domain.ErrTokenInvalid
	}
	return s.user, nil
}

func newAuthedApp(svc *fakeUserService) *fiber.App {
	app := fiber.New()
	m := middleware.NewMiddleware()

	app.Get("/protected", m.AuthMiddleware(svc), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	authedUser := &entities.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}
	svc := &fakeUserService{user: authedUser, key: "valid-token-key"}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token valid-token-key", wantStatus: http.StatusUnauthorized},
		{name: "empty key", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer other-key", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer valid-token-key", wantStatus: http.StatusOK},
	}

	app := newAuthedApp(svc)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			res, err := app.Test(req)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)
		})
	}
}

func TestAuthMiddleware_SetsUserIDLocal(t *testing.T) {
	authedUser := &entities.User{ID: uuid.New(), Email: "alice@example.com", IsActive: true}
	svc := &fakeUserService{user: authedUser, key: "valid-token-key"}

	app := newAuthedApp(svc)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer valid-token-key")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, authedUser.ID.String(), string(body))
}
