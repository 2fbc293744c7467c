package account

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/auth"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/account"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
)

type Login struct {
	users  domain.Repository
	tokens *auth.TokenService
}

func NewLogin(users domain.Repository, tokens *auth.TokenService) *Login {
	return &Login{users: users, tokens: tokens}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User  *models.User
	Token string
}

func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("Email and password are required")
	}

	user, err := uc.users.FindByEmail(ctx, in.Email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller; no account enumeration.
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, in.Password) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := uc.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}
