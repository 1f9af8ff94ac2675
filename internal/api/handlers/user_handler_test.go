package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/entities"
	"recipe-catalog-api/internal/api/handlers"
)

type stubUserService struct {
	registered domain.RegisterRequest
}

func (s *stubUserService) Register(_ context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	s.registered = req
	return domain.RegisterResponse{
		ID:    uuid.NewString(),
		Email: req.Email,
		Name:  req.Name,
	}, nil
}

func (s *stubUserService) CreateSuperuser(context.Context, string, string, string) error {
	return nil
}

func (s *stubUserService) Login(context.Context, domain.LoginRequest) (domain.LoginResponse, error) {
	return domain.LoginResponse{}, domain.ErrInvalidCredentials
}

func (s *stubUserService) Me(context.Context, string) (domain.MeResponse, error) {
	return domain.MeResponse{}, nil
}

func (s *stubUserService) UpdateUser(context.Context, string, domain.UpdateUserRequest) (domain.MeResponse, error) {
	return domain.MeResponse{}, nil
}

func (s *stubUserService) ForgotPassword(context.Context, domain.ForgotPasswordRequest) error {
	return nil
}

func (s *stubUserService) ResetPassword(context.Context, domain.ResetPasswordRequest) error {
	return nil
}

func (s *stubUserService) GetUserByToken(context.Context, string) (*entities.User, error) {
	return nil, domain.ErrTokenInvalid
}

func newUserApp(svc *stubUserService) *fiber.App {
	app := fiber.New()
	handler := handlers.NewUserHandler(svc, validator.New())

	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	return app
}

func TestRegisterHandler(t *testing.T) {
	svc := &stubUserService{}
	app := newUserApp(svc)

	payload := `{"email":"alice@example.com","password":"secret1","name":"Alice"}`
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusCreated, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "secret1")
	assert.NotContains(t, string(body), "password")

	var envelope struct {
		Status  string                  `json:"status"`
		Message string                  `json:"message"`
		Data    domain.RegisterResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	assert.Equal(t, "alice@example.com", envelope.Data.Email)
	assert.NotEmpty(t, envelope.Data.ID)
}

func TestRegisterHandler_InvalidPayload(t *testing.T) {
	app := newUserApp(&stubUserService{})

	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing email", payload: `{"password":"secret1","name":"Alice"}`},
		{name: "malformed email", payload: `{"email":"not-an-email","password":"secret1","name":"Alice"}`},
		{name: "short password", payload: `{"email":"alice@example.com","password":"pw","name":"Alice"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.payload))
			req.Header.Set("Content-Type", "application/json")

			res, err := app.Test(req)
			require.NoError(t, err)
			defer res.Body.Close()

			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		})
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	app := newUserApp(&stubUserService{})

	payload := `{"email":"alice@example.com","password":"wrong99"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "token")
}
