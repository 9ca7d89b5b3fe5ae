package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/diefthyntis/Savasana/internal/apperr"
	"github.com/diefthyntis/Savasana/internal/users"
)

// UserStore is the slice of the user repository the auth flow depends on.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*users.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, u *users.User) error
}

type Service struct {
	users      UserStore
	tokens     *TokenService
	bcryptCost int
}

func NewService(store UserStore, tokens *TokenService, bcryptCost int) *Service {
	return &Service{users: store, tokens: tokens, bcryptCost: bcryptCost}
}

// LoginResult bundles the issued token with the identity summary the client
// shows after sign-in. Username is the email, mirroring the login name.
type LoginResult struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Admin     bool   `json:"admin"`
}

// Login checks the credentials and issues a token. Unknown email and wrong
// password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		Type:      "Bearer",
		ID:        u.ID,
		Username:  u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Admin:     u.Admin,
	}, nil
}

// Register creates a non-admin account. The uniqueness check runs before any
// write so a duplicate email leaves the store untouched.
func (s *Service) Register(ctx context.Context, email, password, firstName, lastName string) error {
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return apperr.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := &users.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(hash),
		Admin:     false,
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
