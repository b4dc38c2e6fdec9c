package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type SignIn struct {
	repo   account.Repository
	issuer *Issuer
}

func NewSignIn(repo account.Repository, issuer *Issuer) *SignIn {
	return &SignIn{repo: repo, issuer: issuer}
}

// Execute não distingue e-mail inexistente de senha errada.
func (uc *SignIn) Execute(ctx context.Context, email, password string) (*SessionView, error) {
	user, err := uc.repo.GetUserByEmail(ctx, validators.NormalizeEmail(email))
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrUnauthenticated("invalid_credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrUnauthenticated("invalid_credentials")
	}

	member, err := uc.repo.GetMembership(ctx, user.ID)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrForbidden("no_membership")
		}
		return nil, err
	}

	tokens, err := uc.issuer.Issue(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &SessionView{
		User:         newUserView(user),
		Organization: member.Organization,
		Role:         member.Role,
		Tokens:       tokens,
	}, nil
}
