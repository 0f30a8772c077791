package authservice

import (
	"context"
	"errors"
	"testing"

	"github.com/otpdesk/otpdesk/internal/domain"
	"github.com/otpdesk/otpdesk/internal/store"
	"github.com/otpdesk/otpdesk/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockStore) {
	ctrl := gomock.NewController(t)
	st := NewMockStore(ctrl)
	service := New(st, &auth.HashService{}, auth.NewJWTService("test-secret"))
	defer ctrl.Finish()
	return service, st
}

func TestRegister(t *testing.T) {
	service, st := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful registration",
			username: "alice",
			password: "password123",
			prepareMock: func() {
				st.EXPECT().
					CreateUser(gomock.Any(), "alice", gomock.Any()).
					Return(&domain.User{ID: 2, Username: "alice"}, nil)
			},
		},
		{
			name:     "Username taken",
			username: "alice",
			password: "password123",
			prepareMock: func() {
				st.EXPECT().
					CreateUser(gomock.Any(), "alice", gomock.Any()).
					Return(nil, store.ErrUsernameTaken)
			},
			expectedError: store.ErrUsernameTaken,
		},
		{
			name:          "Empty password",
			username:      "alice",
			password:      "",
			prepareMock:   func() {},
			expectedError: errors.New("password cannot be empty"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Register(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	service, st := NewMock(t)

	var storedHash string
	st.EXPECT().
		CreateUser(gomock.Any(), "alice", gomock.Any()).
		DoAndReturn(func(_ context.Context, username, passwordHash string) (*domain.User, error) {
			storedHash = passwordHash
			return &domain.User{ID: 2, Username: username, PasswordHash: passwordHash}, nil
		})

	_, err := service.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", storedHash)
	assert.True(t, (&auth.HashService{}).ComparePassword(storedHash, "password123"))
}

func TestAuthenticate(t *testing.T) {
	service, st := NewMock(t)

	hash, err := (&auth.HashService{}).HashPassword("password123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		username      string
		password      string
		prepareMock   func()
		expectedError error
	}{
		{
			name:     "Successful authentication",
			username: "alice",
			password: "password123",
			prepareMock: func() {
				st.EXPECT().
					GetUserByUsername(gomock.Any(), "alice").
					Return(&domain.User{ID: 2, Username: "alice", PasswordHash: hash}, nil)
			},
		},
		{
			name:     "Unknown user",
			username: "mallory",
			password: "password123",
			prepareMock: func() {
				st.EXPECT().
					GetUserByUsername(gomock.Any(), "mallory").
					Return(nil, store.ErrUserNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			username: "alice",
			password: "wrongpassword",
			prepareMock: func() {
				st.EXPECT().
					GetUserByUsername(gomock.Any(), "alice").
					Return(&domain.User{ID: 2, Username: "alice", PasswordHash: hash}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Authenticate(context.Background(), tt.username, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	service, st := NewMock(t)

	st.EXPECT().GetUser(gomock.Any(), 2).Return(&domain.User{ID: 2, Username: "alice"}, nil)
	user, err := service.GetUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, user.ID)

	st.EXPECT().GetUser(gomock.Any(), 42).Return(nil, store.ErrUserNotFound)
	_, err = service.GetUser(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken(2)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.NewJWTService("test-secret").ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 2, claims.UserID)
}
