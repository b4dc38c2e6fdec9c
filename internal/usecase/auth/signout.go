package auth

import (
	"context"

	authtoken "github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type SignOut struct {
	issuer *Issuer
}

func NewSignOut(issuer *Issuer) *SignOut {
	return &SignOut{issuer: issuer}
}

// Execute é idempotente: token ausente ou desconhecido não é erro.
func (uc *SignOut) Execute(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}

	rt, err := uc.issuer.repo.GetRefreshTokenByHash(ctx, authtoken.HashRefreshToken(raw))
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil
		}
		return err
	}
	if rt.RevokedAt != nil {
		return nil
	}

	err = uc.issuer.repo.RevokeRefreshToken(ctx, rt.ID, uc.issuer.now())
	if httperr.IsRecordNotFound(err) {
		return nil
	}
	return err
}
