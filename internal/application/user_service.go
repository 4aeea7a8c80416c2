package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/wiratama/expense-tracker-api/internal/domain/entity"
	repo "github.com/wiratama/expense-tracker-api/internal/domain/repository"
	"github.com/wiratama/expense-tracker-api/pkg/apperr"
	"github.com/wiratama/expense-tracker-api/pkg/helpers"
)

// UserService owns registration, login, and profile flows.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

// AuthResponse is the profile-plus-token payload returned by register and
// login. The password hash never leaves the service layer.
type AuthResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	UserType entity.UserType `json:"userType"`
	Token    string          `json:"token"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UserType entity.UserType
	Phone    string
}

// Register creates a new identity and issues its first token. The email
// uniqueness invariant is enforced both by the pre-check and by the unique
// index underneath; the index is what holds under concurrent registration.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*AuthResponse, error) {
	if existing, err := s.Repo.GetByEmail(ctx, in.Email); err == nil && existing != nil {
		return nil, apperr.New(apperr.AlreadyExists, "User already exists")
	} else if err != nil && apperr.KindOf(err) != apperr.NotFound {
		return nil, err
	}

	hashed, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	userType := in.UserType
	if userType == "" {
		userType = entity.RoleUser
	}

	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		UserType: userType,
		Phone:    in.Phone,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.JWT.Generate(u.ID, u.UserType)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	return &AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, UserType: u.UserType, Token: token}, nil
}

// Login verifies credentials and issues a fresh token. An unknown email is
// reported as not found; a known email with a wrong password as invalid
// credentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if apperr.KindOf(err) == apperr.NotFound {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, apperr.New(apperr.InvalidCredentials, "Invalid credentials")
	}

	token, err := s.JWT.Generate(u.ID, u.UserType)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return nil, err
	}

	return &AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, UserType: u.UserType, Token: token}, nil
}

// GetProfile returns the caller's record without the password hash.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	safe := u.WithoutPassword()
	return &safe, nil
}

type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// UpdateProfile mutates name and phone only; email and role are immutable
// through this path. Field presence is explicit, so clearing the phone
// with an empty string works.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperr.New(apperr.Validation, "Name cannot be empty")
		}
		u.Name = *in.Name
	}
	if in.Phone != nil {
		u.Phone = *in.Phone
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	safe := u.WithoutPassword()
	return &safe, nil
}
