package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// Input serve para criação (Name obrigatório) e edição (nil mantém).
type Input struct {
	Name  *string
	Phone *string
	Email *string
}

// ======================================================
// LIST
// ======================================================

type ListClients struct {
	repo directory.ClientRepository
}

func NewListClients(repo directory.ClientRepository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	sess session.Session,
	query string,
) ([]models.Client, error) {
	return uc.repo.ListClients(ctx, sess.OrganizationID, query)
}

// ======================================================
// CREATE
// ======================================================

type CreateClient struct {
	repo directory.ClientRepository
}

func NewCreateClient(repo directory.ClientRepository) *CreateClient {
	return &CreateClient{repo: repo}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	sess session.Session,
	in Input,
) (*models.Client, error) {

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	c := &models.Client{OrganizationID: sess.OrganizationID}
	if err := apply(c, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateClient struct {
	repo directory.ClientRepository
}

func NewUpdateClient(repo directory.ClientRepository) *UpdateClient {
	return &UpdateClient{repo: repo}
}

func (uc *UpdateClient) Execute(
	ctx context.Context,
	sess session.Session,
	id uint,
	in Input,
) (*models.Client, error) {

	c, err := uc.repo.GetClient(ctx, sess.OrganizationID, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("client_not_found")
		}
		return nil, err
	}

	if err := apply(c, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateClient(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteClient struct {
	repo directory.ClientRepository
}

func NewDeleteClient(repo directory.ClientRepository) *DeleteClient {
	return &DeleteClient{repo: repo}
}

// Execute recusa apagar cliente com agendamentos (FK RESTRICT).
func (uc *DeleteClient) Execute(ctx context.Context, sess session.Session, id uint) error {
	err := uc.repo.DeleteClient(ctx, sess.OrganizationID, id)
	switch {
	case err == nil:
		return nil
	case httperr.IsRecordNotFound(err):
		return httperr.ErrNotFound("client_not_found")
	case httperr.IsForeignKeyViolation(err):
		return httperr.ErrConflict("client_in_use")
	}
	return err
}

func apply(c *models.Client, in Input) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return httperr.ErrBusiness("invalid_request")
		}
		c.Name = name
	}
	if in.Phone != nil {
		c.Phone = validators.NormalizePhone(*in.Phone)
	}
	if in.Email != nil {
		c.Email = validators.NormalizeEmail(*in.Email)
	}
	return nil
}
