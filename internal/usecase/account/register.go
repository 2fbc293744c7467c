package account

import (
	"context"

	"github.com/BruksfildServices01/fleet-manager/internal/apperr"
	"github.com/BruksfildServices01/fleet-manager/internal/audit"
	"github.com/BruksfildServices01/fleet-manager/internal/auth"
	domain "github.com/BruksfildServices01/fleet-manager/internal/domain/account"
	"github.com/BruksfildServices01/fleet-manager/internal/models"
	"github.com/BruksfildServices01/fleet-manager/internal/validators"
)

type Register struct {
	users  domain.Repository
	tokens *auth.TokenService
	audit  *audit.Dispatcher
}

func NewRegister(
	users domain.Repository,
	tokens *auth.TokenService,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		users:  users,
		tokens: tokens,
		audit:  audit,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	User  *models.User
	Token string
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("Name, email and password are required")
	}

	if len(in.Password) < 6 {
		return nil, apperr.Validation("Password must be at least 6 characters")
	}

	name, err := validators.ValidateName(in.Name)
	if err != nil {
		return nil, err
	}

	// Email is stored exactly as given; lookups are case-sensitive too.
	if !validators.IsEmailValid(in.Email) {
		return nil, apperr.Validation("Invalid email")
	}

	exists, err := uc.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("User with this email already exists")
	}

	// Hash before constructing the record. The plaintext never reaches the
	// store or the logs.
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &models.User{
		Name:         name,
		Email:        in.Email,
		PasswordHash: hash,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID: user.ID,
		Action: "user_registered",
		Entity: "user",
	})

	return &RegisterOutput{User: user, Token: token}, nil
}
