package organization

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

type Settings struct {
	repo account.Repository
}

func NewSettings(repo account.Repository) *Settings {
	return &Settings{repo: repo}
}

func (uc *Settings) Get(ctx context.Context, sess session.Session) (*models.Organization, error) {
	org, err := uc.repo.GetOrganization(ctx, sess.OrganizationID)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("organization_not_found")
		}
		return nil, err
	}
	return org, nil
}

// Rename altera só o nome; o slug é fixado na criação.
func (uc *Settings) Rename(ctx context.Context, sess session.Session, name string) (*models.Organization, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	org, err := uc.Get(ctx, sess)
	if err != nil {
		return nil, err
	}

	org.Name = name
	if err := uc.repo.UpdateOrganization(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}
