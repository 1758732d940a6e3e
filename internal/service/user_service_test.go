package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campushub/internal/auth"
	"campushub/internal/httperr"
	"campushub/internal/model"
	"campushub/internal/schema"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newTestTokenService(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret")
	assert.NoError(t, err)
	return tokens
}

func signupRequest() *schema.SignupRequest {
	return &schema.SignupRequest{
		Name:       "Alice Chen",
		Email:      "a@x.com",
		Password:   "secret1",
		DOB:        "2000-03-14",
		Role:       model.RoleStudent,
		Department: "Computer Science",
		Year:       "3",
	}
}

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockUserRepository)
		expectedStatus int
	}{
		{
			name: "successful signup",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, mongo.ErrNoDocuments)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name: "email already taken",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{Email: "a@x.com"}, nil)
			},
			expectedStatus: 409,
		},
		{
			name: "unique index loses the race",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, mongo.ErrNoDocuments)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(mongo.WriteException{
					WriteErrors: mongo.WriteErrors{{Code: 11000}},
				})
			},
			expectedStatus: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewUserService(mockRepo, newTestTokenService(t))
			err := svc.Signup(context.Background(), signupRequest())

			if tt.expectedStatus == 0 {
				assert.NoError(t, err)
			} else {
				var herr *httperr.Error
				assert.ErrorAs(t, err, &herr)
				assert.Equal(t, tt.expectedStatus, herr.Status)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Signup_NeverStoresPlaintext(t *testing.T) {
	mockRepo := new(MockUserRepository)
	var stored *model.User
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, mongo.ErrNoDocuments)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.User) }).
		Return(nil)

	svc := NewUserService(mockRepo, newTestTokenService(t))
	assert.NoError(t, svc.Signup(context.Background(), signupRequest()))

	assert.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.True(t, auth.CheckPassword("secret1", stored.Password))
	assert.Equal(t, model.RoleStudent, stored.Role)
}

func TestUserService_Signin(t *testing.T) {
	hash, err := auth.HashPassword("secret1")
	assert.NoError(t, err)
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		password       string
		setupMock      func(*MockUserRepository)
		expectPair     bool
		expectOK       bool
		expectedStatus int
	}{
		{
			name:     "unknown user",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, mongo.ErrNoDocuments)
			},
			expectedStatus: 404,
		},
		{
			// A wrong password is an outcome, not an error.
			name:     "wrong password",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: userID, Password: hash}, nil)
			},
			expectOK: false,
		},
		{
			name:     "correct password",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(&model.User{ID: userID, Password: hash}, nil)
			},
			expectPair: true,
			expectOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			tokens := newTestTokenService(t)
			svc := NewUserService(mockRepo, tokens)
			pair, ok, err := svc.Signin(context.Background(), "a@x.com", tt.password)

			if tt.expectedStatus != 0 {
				var herr *httperr.Error
				assert.ErrorAs(t, err, &herr)
				assert.Equal(t, tt.expectedStatus, herr.Status)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectOK, ok)
			if !tt.expectPair {
				assert.Nil(t, pair)
				return
			}

			assert.Equal(t, auth.ExpiresIn, pair.ExpiresIn)
			for _, token := range []string{pair.Token, pair.RefreshToken} {
				parsed, err := tokens.Parse(token)
				assert.NoError(t, err)
				assert.Equal(t, userID.Hex(), parsed, "token verifies back to the same user")
			}
		})
	}
}

func TestUserService_IssueToken(t *testing.T) {
	userID := primitive.NewObjectID()

	t.Run("user deleted", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(nil, mongo.ErrNoDocuments)

		svc := NewUserService(mockRepo, newTestTokenService(t))
		_, err := svc.IssueToken(context.Background(), userID.Hex())

		var herr *httperr.Error
		assert.ErrorAs(t, err, &herr)
		assert.Equal(t, 404, herr.Status)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), newTestTokenService(t))
		_, err := svc.IssueToken(context.Background(), "nope")

		var herr *httperr.Error
		assert.ErrorAs(t, err, &herr)
		assert.Equal(t, 401, herr.Status)
	})

	t.Run("fresh access token", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)

		tokens := newTestTokenService(t)
		svc := NewUserService(mockRepo, tokens)
		token, err := svc.IssueToken(context.Background(), userID.Hex())

		assert.NoError(t, err)
		parsed, err := tokens.Parse(token.Token)
		assert.NoError(t, err)
		assert.Equal(t, userID.Hex(), parsed)
	})
}
