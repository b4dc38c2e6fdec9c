package auth

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

type GetSession struct {
	repo account.Repository
}

func NewGetSession(repo account.Repository) *GetSession {
	return &GetSession{repo: repo}
}

func (uc *GetSession) Execute(ctx context.Context, sess session.Session) (*SessionView, error) {
	user, err := uc.repo.GetUser(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}

	org, err := uc.repo.GetOrganization(ctx, sess.OrganizationID)
	if err != nil {
		return nil, err
	}

	return &SessionView{
		User:         newUserView(user),
		Organization: *org,
		Role:         sess.Role,
	}, nil
}
