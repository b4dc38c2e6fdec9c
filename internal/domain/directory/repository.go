package directory

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ClientRepository interface {
	ListClients(ctx context.Context, organizationID uint, query string) ([]models.Client, error)
	GetClient(ctx context.Context, organizationID, clientID uint) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, client *models.Client) error
	// DeleteClient falha com violação de chave estrangeira se o cliente
	// ainda tiver agendamentos.
	DeleteClient(ctx context.Context, organizationID, clientID uint) error
}

type ProfessionalRepository interface {
	// ListProfessionals sempre carrega a disponibilidade.
	ListProfessionals(ctx context.Context, organizationID uint) ([]models.Professional, error)
	GetProfessional(ctx context.Context, organizationID, professionalID uint) (*models.Professional, error)
	CreateProfessional(ctx context.Context, p *models.Professional) error
	UpdateProfessional(ctx context.Context, p *models.Professional) error
	DeleteProfessional(ctx context.Context, organizationID, professionalID uint) error
}
