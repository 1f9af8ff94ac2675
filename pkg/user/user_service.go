package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"recipe-catalog-api/domain"
	"recipe-catalog-api/entities"
	"recipe-catalog-api/internal/logger"
	"recipe-catalog-api/internal/utils"
	"recipe-catalog-api/internal/utils/mailing"
	"recipe-catalog-api/pkg/token"
)

const resetTokenDuration = 15 * time.Minute

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		CreateSuperuser(ctx context.Context, email, password, name string) error
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.MeResponse, error)
		UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.MeResponse, error)
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
		GetUserByToken(ctx context.Context, key string) (*entities.User, error)
	}

	userService struct {
		userRepository UserRepository
		tokenService   token.TokenService
	}
)

func NewUserService(userRepository UserRepository, tokenService token.TokenService) UserService {
	return &userService{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

// NormalizeEmail lowercases the domain part. The local part is kept
// as provided, so the stored address still looks the way the user
// typed it while lookups stay case-insensitive on the domain.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func (s *userService) createUser(ctx context.Context, email, password, name string, superuser bool) (*entities.User, error) {
	email = NormalizeEmail(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.ErrEmailRequired
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user := &entities.User{
		Email:       email,
		Password:    string(hashed),
		Name:        name,
		IsActive:    true,
		IsStaff:     superuser,
		IsSuperuser: superuser,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		logger.Log.Errorw("failed to create user", "err", err)
		return nil, err
	}
	return user, nil
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	user, err := s.createUser(ctx, req.Email, req.Password, req.Name, false)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	return domain.RegisterResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *userService) CreateSuperuser(ctx context.Context, email, password, name string) error {
	_, err := s.createUser(ctx, email, password, name, true)
	return err
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if !user.IsActive {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	key, err := generateTokenKey()
	if err != nil {
		return domain.LoginResponse{}, err
	}

	issued := &entities.Token{
		Key:       key,
		UserID:    user.ID,
		CreatedAt: time.Now(),
	}
	if err := s.userRepository.ReplaceToken(ctx, issued); err != nil {
		logger.Log.Errorw("failed to store token", "err", err)
		return domain.LoginResponse{}, err
	}

	return domain.LoginResponse{Token: key}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req domain.UpdateUserRequest) (domain.MeResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeResponse{}, domain.ErrUserNotFound
		}
		return domain.MeResponse{}, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.MeResponse{}, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		logger.Log.Errorw("failed to update user", "err", err)
		return domain.MeResponse{}, err
	}

	return domain.MeResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	user, err := s.userRepository.GetUserByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Do not reveal whether the address is registered.
			return nil
		}
		return err
	}

	resetToken, err := s.tokenService.GenerateResetToken(user.ID.String(), resetTokenDuration)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", utils.GetConfig("APP_URL"), resetToken)
	body := fmt.Sprintf("<p>Hello %s,</p><p>Use the link below to reset your password. It expires in 15 minutes.</p><p><a href=%q>Reset password</a></p>", user.Name, link)

	if err := mailing.SendMail(user.Email, "Reset your password", body); err != nil {
		logger.Log.Errorw("failed to send reset email", "err", err)
		return err
	}
	return nil
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	userID, err := s.tokenService.ValidateResetToken(req.Token)
	if err != nil {
		return err
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) GetUserByToken(ctx context.Context, key string) (*entities.User, error) {
	stored, err := s.userRepository.GetTokenByKey(ctx, key)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if stored.User == nil || !stored.User.IsActive {
		return nil, domain.ErrTokenInvalid
	}
	return stored.User, nil
}

func generateTokenKey() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
