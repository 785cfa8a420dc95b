package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/xavierca1/crm-backend/internal/entity"
)

type SignupUseCase struct {
	Users  entity.UserRepositoryInterface
	Tokens TokenIssuer
	Mailer WelcomeMailer // optional
}

func NewSignupUseCase(users entity.UserRepositoryInterface, tokens TokenIssuer, mailer WelcomeMailer) *SignupUseCase {
	return &SignupUseCase{Users: users, Tokens: tokens, Mailer: mailer}
}

func (uc *SignupUseCase) Execute(ctx context.Context, in Credentials) (*AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, ErrCredentialsRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &entity.User{Email: email, PasswordHash: string(hash)}
	if err := uc.Users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrUserExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	token, err := uc.Tokens.Issue(email)
	if err != nil {
		return nil, err
	}

	if uc.Mailer != nil {
		go func() {
			if err := uc.Mailer.SendWelcome(email); err != nil {
				log.Printf("welcome mail to %s failed: %v", email, err)
			}
		}()
	}

	return &AuthOutput{
		Message: "Signup successful",
		User:    AuthUser{Email: email},
		Token:   token,
	}, nil
}
