package auth

import (
	"context"

	authtoken "github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type Refresh struct {
	issuer *Issuer
}

func NewRefresh(issuer *Issuer) *Refresh {
	return &Refresh{issuer: issuer}
}

// Execute revoga o token apresentado e emite outro na mesma família.
func (uc *Refresh) Execute(ctx context.Context, raw string) (*Tokens, error) {
	if raw == "" {
		return nil, httperr.ErrUnauthenticated("invalid_refresh")
	}

	repo := uc.issuer.repo
	cur, err := repo.GetRefreshTokenByHash(ctx, authtoken.HashRefreshToken(raw))
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrUnauthenticated("invalid_refresh")
		}
		return nil, err
	}

	now := uc.issuer.now()
	if cur.RevokedAt != nil || now.After(cur.ExpiresAt) {
		return nil, httperr.ErrUnauthenticated("invalid_refresh")
	}

	if err := repo.RevokeRefreshToken(ctx, cur.ID, now); err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrUnauthenticated("invalid_refresh")
		}
		return nil, err
	}

	return uc.issuer.issue(ctx, cur.UserID, cur.FamilyID)
}
