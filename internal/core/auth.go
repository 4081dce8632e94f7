package core

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/upcheck-dev/upcheck/internal/apperr"
	"github.com/upcheck-dev/upcheck/internal/auth"
	"github.com/upcheck-dev/upcheck/internal/models"
	"github.com/upcheck-dev/upcheck/internal/store"
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult pairs a freshly issued session token with the public user shape.
type AuthResult struct {
	Token string
	User  *models.User
}

type AuthCore struct {
	users  *store.UserStore
	tokens *auth.TokenManager
}

func NewAuthCore(users *store.UserStore, tokens *auth.TokenManager) *AuthCore {
	return &AuthCore{users: users, tokens: tokens}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account. Email uniqueness is scoped to active rows: an
// address belonging only to soft-deleted accounts is available again.
func (c *AuthCore) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)

	existing, err := c.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ErrEmailTaken()
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(passwordHash),
		FullName:     input.FullName,
	}

	if err := c.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	token, err := c.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: &user}, nil
}

// Login reports the same InvalidCredentials for an unknown email and a wrong
// password.
func (c *AuthCore) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)

	user, err := c.users.FindByEmailWithPassword(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, apperr.ErrInvalidCredentials()
	}

	token, err := c.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (c *AuthCore) Me(ctx context.Context, userID uint) (*models.User, error) {
	user, err := c.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound()
	}

	return user, nil
}

func (c *AuthCore) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	user, err := c.users.FindByIDWithPassword(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrUserNotFound()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return apperr.ErrInvalidCredentials()
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return c.users.UpdatePassword(ctx, userID, string(passwordHash))
}
