package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrFieldsRequired      = errors.New("all fields are mandatory")
	ErrInvalidEmail        = errors.New("email format is invalid")
	ErrUserAlreadyExists   = errors.New("username or email is previously registered")
	ErrCredentialsRequired = errors.New("username or email and password is required for login")
	ErrUserDoesNotExist    = errors.New("invalid username or email")
	ErrInvalidCredentials  = errors.New("invalid username, email or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing access tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username, email string) (string, error)
}

// AuthService handles registration, login and user listing.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || password == "" {
		return nil, ErrFieldsRequired
	}
	if !IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	created, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return created, nil
}

// Login authenticates a user by username or email and issues an access token.
// An unknown username yields ErrUserDoesNotExist; an unknown email or a
// password mismatch yields ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, email, password string) (*models.UserDB, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if (username == "" && email == "") || password == "" {
		return nil, "", ErrCredentialsRequired
	}

	var (
		user *models.UserDB
		err  error
	)
	if username != "" {
		user, err = svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
		if err != nil {
			logger.Log.Errorw("failed to get user", "err", err)
			return nil, "", err
		}
		if user == nil {
			logger.Log.Errorw("user does not exist", "username", username)
			return nil, "", ErrUserDoesNotExist
		}
	} else {
		user, err = svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
		if err != nil {
			logger.Log.Errorw("failed to get user", "err", err)
			return nil, "", err
		}
		if user == nil {
			logger.Log.Errorw("user does not exist", "email", email)
			return nil, "", ErrInvalidCredentials
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", user.Username)
		return nil, "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// ListUsers returns all registered users.
func (svc *AuthService) ListUsers(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}
