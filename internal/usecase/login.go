package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/crm-backend/internal/entity"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthUser struct {
	Email string `json:"email"`
}

type AuthOutput struct {
	Message string   `json:"message"`
	User    AuthUser `json:"user"`
	Token   string   `json:"token"`
}

// AdminCredentials is the statically configured fallback identity. It is
// never persisted; empty fields mean the fallback is not configured.
type AdminCredentials struct {
	Email    string
	Password string
}

func (a AdminCredentials) Configured() bool {
	return a.Email != "" && a.Password != ""
}

type LoginUseCase struct {
	Users  entity.UserRepositoryInterface
	Tokens TokenIssuer
	Admin  AdminCredentials
}

func NewLoginUseCase(users entity.UserRepositoryInterface, tokens TokenIssuer, admin AdminCredentials) *LoginUseCase {
	return &LoginUseCase{Users: users, Tokens: tokens, Admin: admin}
}

// Execute resolves the identity against two credential sources in fixed
// order: the registered-user store, then the configured admin. Both failure
// branches return the same invalid-credentials error so callers cannot
// probe which accounts exist.
func (uc *LoginUseCase) Execute(ctx context.Context, in Credentials) (*AuthOutput, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrCredentialsRequired
	}

	found, valid := uc.resolveRegistered(ctx, email, in.Password)
	if !found {
		var err error
		valid, err = uc.resolveAdmin(email, in.Password)
		if err != nil {
			return nil, err
		}
	}
	if !valid {
		return nil, ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(email)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{
		Message: "Login successful",
		User:    AuthUser{Email: email},
		Token:   token,
	}, nil
}

// resolveRegistered checks the user store. A lookup failure is treated as
// "no user" so the admin fallback keeps working while the store is down.
func (uc *LoginUseCase) resolveRegistered(ctx context.Context, email, password string) (found, valid bool) {
	user, err := uc.Users.FindByEmail(ctx, strings.ToLower(email))
	if err != nil || user == nil {
		return false, false
	}
	match := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return true, match == nil
}

func (uc *LoginUseCase) resolveAdmin(email, password string) (bool, error) {
	if !uc.Admin.Configured() {
		return false, ErrAdminNotConfigured
	}
	return email == uc.Admin.Email && password == uc.Admin.Password, nil
}
