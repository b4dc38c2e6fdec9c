package professional

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// Input: só dados cadastrais. Disponibilidade e foto têm operações próprias.
type Input struct {
	Name      *string
	Specialty *string
	Email     *string
	Phone     *string
}

// ======================================================
// LIST / GET
// ======================================================

type ListProfessionals struct {
	repo directory.ProfessionalRepository
}

func NewListProfessionals(repo directory.ProfessionalRepository) *ListProfessionals {
	return &ListProfessionals{repo: repo}
}

func (uc *ListProfessionals) Execute(ctx context.Context, sess session.Session) ([]models.Professional, error) {
	return uc.repo.ListProfessionals(ctx, sess.OrganizationID)
}

type GetProfessional struct {
	repo directory.ProfessionalRepository
}

func NewGetProfessional(repo directory.ProfessionalRepository) *GetProfessional {
	return &GetProfessional{repo: repo}
}

func (uc *GetProfessional) Execute(ctx context.Context, sess session.Session, id uint) (*models.Professional, error) {
	return get(ctx, uc.repo, sess, id)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

type CreateProfessional struct {
	repo directory.ProfessionalRepository
}

func NewCreateProfessional(repo directory.ProfessionalRepository) *CreateProfessional {
	return &CreateProfessional{repo: repo}
}

func (uc *CreateProfessional) Execute(
	ctx context.Context,
	sess session.Session,
	in Input,
) (*models.Professional, error) {

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	p := &models.Professional{
		OrganizationID: sess.OrganizationID,
		Availability:   []models.AvailabilityWindow{},
	}
	if err := apply(p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateProfessional(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type UpdateProfessional struct {
	repo directory.ProfessionalRepository
}

func NewUpdateProfessional(repo directory.ProfessionalRepository) *UpdateProfessional {
	return &UpdateProfessional{repo: repo}
}

func (uc *UpdateProfessional) Execute(
	ctx context.Context,
	sess session.Session,
	id uint,
	in Input,
) (*models.Professional, error) {

	p, err := get(ctx, uc.repo, sess, id)
	if err != nil {
		return nil, err
	}

	if err := apply(p, in); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateProfessional(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteProfessional struct {
	repo directory.ProfessionalRepository
}

func NewDeleteProfessional(repo directory.ProfessionalRepository) *DeleteProfessional {
	return &DeleteProfessional{repo: repo}
}

// Execute apaga também a disponibilidade e os agendamentos (cascade).
func (uc *DeleteProfessional) Execute(ctx context.Context, sess session.Session, id uint) error {
	err := uc.repo.DeleteProfessional(ctx, sess.OrganizationID, id)
	if httperr.IsRecordNotFound(err) {
		return httperr.ErrNotFound("professional_not_found")
	}
	return err
}

func get(
	ctx context.Context,
	repo directory.ProfessionalRepository,
	sess session.Session,
	id uint,
) (*models.Professional, error) {

	p, err := repo.GetProfessional(ctx, sess.OrganizationID, id)
	if err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("professional_not_found")
		}
		return nil, err
	}
	return p, nil
}

func apply(p *models.Professional, in Input) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return httperr.ErrBusiness("invalid_request")
		}
		p.Name = name
	}
	if in.Specialty != nil {
		p.Specialty = strings.TrimSpace(*in.Specialty)
	}
	if in.Email != nil {
		p.Email = validators.NormalizeEmail(*in.Email)
	}
	if in.Phone != nil {
		p.Phone = validators.NormalizePhone(*in.Phone)
	}
	return nil
}
