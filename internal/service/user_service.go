package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"campushub/internal/auth"
	"campushub/internal/httperr"
	"campushub/internal/model"
	"campushub/internal/repository"
	"campushub/internal/schema"
)

// TokenPair is the credential set issued on signin.
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

// AccessToken is the single token issued on refresh.
type AccessToken struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

// UserService handles signup, signin, and token refresh.
type UserService interface {
	Signup(ctx context.Context, req *schema.SignupRequest) error
	// Signin returns (pair, true, nil) on success and (nil, false, nil) on a
	// wrong password, which is a domain outcome rather than an error.
	Signin(ctx context.Context, email, password string) (*TokenPair, bool, error)
	IssueToken(ctx context.Context, userID string) (*AccessToken, error)
}

type userService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, tokens *auth.TokenService) UserService {
	return &userService{users: users, tokens: tokens}
}

// Signup registers a new user. The email is checked for uniqueness
// case-insensitively; the unique index catches signups that race past this
// check and surfaces as the same conflict.
func (s *userService) Signup(ctx context.Context, req *schema.SignupRequest) error {
	_, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return httperr.Conflict("User already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check user existence: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hash,
		DOB:        req.DateOfBirth(),
		Role:       req.Role,
		Department: req.Department,
		Year:       req.Year,
		Avatar:     req.Avatar,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return httperr.Conflict("User already exists")
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (s *userService) Signin(ctx context.Context, email, password string) (*TokenPair, bool, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, httperr.NotFound("User not found")
		}
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(password, user.Password) {
		return nil, false, nil
	}

	access, refresh, err := s.tokens.IssueTokenPair(user.ID.Hex())
	if err != nil {
		return nil, false, fmt.Errorf("issue token pair: %w", err)
	}
	return &TokenPair{Token: access, RefreshToken: refresh, ExpiresIn: auth.ExpiresIn}, true, nil
}

// IssueToken mints a fresh access token for an already-authenticated user,
// verifying the account still exists.
func (s *userService) IssueToken(ctx context.Context, userID string) (*AccessToken, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, httperr.Unauthorized("Invalid token")
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, httperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	token, err := s.tokens.IssueAccessToken(user.ID.Hex())
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	return &AccessToken{Token: token, ExpiresIn: auth.ExpiresIn}, nil
}
