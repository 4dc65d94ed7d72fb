package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/models"
	"github.com/sbilibin2017/blog-api/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		email        string
		password     string
		existingUser *models.UserDB
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pass123",
		},
		{
			name:     "missing username",
			username: "",
			email:    "alice@example.com",
			password: "pass123",
			wantErr:  services.ErrFieldsRequired,
		},
		{
			name:     "missing password",
			username: "alice",
			email:    "alice@example.com",
			password: "",
			wantErr:  services.ErrFieldsRequired,
		},
		{
			name:     "invalid email",
			username: "alice",
			email:    "not-an-email",
			password: "pass123",
			wantErr:  services.ErrInvalidEmail,
		},
		{
			name:         "user already exists",
			username:     "bob",
			email:        "bob@example.com",
			password:     "pass123",
			existingUser: &models.UserDB{UserID: uuid.New()},
			wantErr:      services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validInput := tt.username != "" && tt.password != "" && tt.email != "" && tt.email != "not-an-email"

			if validInput {
				mockReader.EXPECT().
					GetByUsernameOrEmail(gomock.Any(), &tt.username, &tt.email).
					Return(tt.existingUser, tt.readerErr)

				if tt.existingUser == nil && tt.readerErr == nil {
					mockWriter.EXPECT().
						Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
						DoAndReturn(func(_ context.Context, username, email, hash string) (*models.UserDB, error) {
							if tt.writerErr != nil {
								return nil, tt.writerErr
							}
							return &models.UserDB{
								UserID:       uuid.New(),
								Username:     username,
								Email:        email,
								PasswordHash: hash,
							}, nil
						})
				}
			}

			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	password := "secret"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()

	tests := []struct {
		name      string
		username  string
		email     string
		loginPass string
		user      *models.UserDB
		readerErr error
		jwtErr    error
		wantErr   error
		wantToken string
	}{
		{
			name:      "successful login by username",
			username:  "alice",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: string(hashed)},
			wantToken: "token123",
		},
		{
			name:      "successful login by email",
			email:     "alice@example.com",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "alice", Email: "alice@example.com", PasswordHash: string(hashed)},
			wantToken: "token123",
		},
		{
			name:      "missing credentials",
			loginPass: password,
			wantErr:   services.ErrCredentialsRequired,
		},
		{
			name:     "missing password",
			username: "alice",
			wantErr:  services.ErrCredentialsRequired,
		},
		{
			name:      "unknown username",
			username:  "bob",
			loginPass: password,
			wantErr:   services.ErrUserDoesNotExist,
		},
		{
			name:      "unknown email",
			email:     "nobody@example.com",
			loginPass: password,
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "invalid password",
			username:  "carol",
			loginPass: "wrongpass",
			user:      &models.UserDB{UserID: uuid.New(), Username: "carol", PasswordHash: string(hashed)},
			wantErr:   services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "eve",
			loginPass: password,
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "token generation error",
			username:  "dan",
			loginPass: password,
			user:      &models.UserDB{UserID: userID, Username: "dan", PasswordHash: string(hashed)},
			jwtErr:    errors.New("jwt error"),
			wantErr:   errors.New("jwt error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasIdentifier := tt.username != "" || tt.email != ""
			if hasIdentifier && tt.loginPass != "" {
				if tt.username != "" {
					mockReader.EXPECT().
						GetByUsernameOrEmail(gomock.Any(), &tt.username, (*string)(nil)).
						Return(tt.user, tt.readerErr)
				} else {
					mockReader.EXPECT().
						GetByUsernameOrEmail(gomock.Any(), (*string)(nil), &tt.email).
						Return(tt.user, tt.readerErr)
				}

				if tt.user != nil && tt.readerErr == nil && tt.loginPass == password {
					mockJWT.EXPECT().
						Generate(gomock.Any(), tt.user.UserID, tt.user.Username, tt.user.Email).
						Return(tt.wantToken, tt.jwtErr)
				}
			}

			user, token, err := svc.Login(context.Background(), tt.username, tt.email, tt.loginPass)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.user, user)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	t.Run("success", func(t *testing.T) {
		want := []models.UserDB{
			{UserID: uuid.New(), Username: "alice"},
			{UserID: uuid.New(), Username: "bob"},
		}
		mockReader.EXPECT().List(gomock.Any()).Return(want, nil)

		users, err := svc.ListUsers(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, want, users)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db error"))

		users, err := svc.ListUsers(context.Background())
		assert.EqualError(t, err, "db error")
		assert.Nil(t, users)
	})
}
