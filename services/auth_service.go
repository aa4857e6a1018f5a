package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
)

// AuthResult carries the outcome of a successful register or login.
type AuthResult struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// AuthService handles registration, login and identity lookups.
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*AuthResult, *ServiceError)
	Login(ctx context.Context, email, password string) (*AuthResult, *ServiceError)
	CurrentUser(ctx context.Context, userID string) (*models.User, *ServiceError)
	EnsureAdminUser(ctx context.Context, email, password string) error
}

type authServiceImpl struct {
	userRepo repository.UserRepository
	tokens   TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens TokenService, logger *zap.Logger) AuthService {
	return &authServiceImpl{userRepo: userRepo, tokens: tokens, logger: logger}
}

func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*AuthResult, *ServiceError) {
	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Email already registered"}
	} else if !errors.Is(err, repository.ErrNotFound) {
		s.logger.Error("Failed to check existing user", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Registration failed"}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Registration failed"}
	}

	user := models.NewUser(req.Email, req.FirstName, req.LastName, req.Phone)
	user.Password = string(hashed)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Email already registered"}
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Registration failed"}
	}

	token, err := s.tokens.Generate(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Registration failed"}
	}

	s.logger.Info("User registered", zap.String("user_id", user.UserID))
	return &AuthResult{Token: token, UserID: user.UserID, Role: user.Role}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, *ServiceError) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
		}
		s.logger.Error("Failed to load user", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Login failed"}
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, &ServiceError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}
	}

	token, err := s.tokens.Generate(user.UserID, user.Role)
	if err != nil {
		s.logger.Error("Failed to issue token", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Login failed"}
	}

	return &AuthResult{Token: token, UserID: user.UserID, Role: user.Role}, nil
}

func (s *authServiceImpl) CurrentUser(ctx context.Context, userID string) (*models.User, *ServiceError) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusUnauthorized, Message: "User not found"}
		}
		s.logger.Error("Failed to load user", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load user"}
	}
	return user, nil
}

// EnsureAdminUser creates the default admin account if it does not exist.
// Called once at startup.
func (s *authServiceImpl) EnsureAdminUser(ctx context.Context, email, password string) error {
	if password == "" {
		s.logger.Info("ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.NewUser(email, "Admin", "User", "")
	admin.Password = string(hashed)
	admin.Role = models.RoleAdmin

	if err := s.userRepo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("Admin user created", zap.String("email", email))
	return nil
}
