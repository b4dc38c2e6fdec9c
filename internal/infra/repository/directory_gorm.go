package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// --------------------------------------------------
// Clients
// --------------------------------------------------

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) ListClients(
	ctx context.Context,
	organizationID uint,
	query string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx).Where("organization_id = ?", organizationID)

	text, phone := ClientSearchPatterns(query)
	switch {
	case text == "":
	case phone == "":
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", text, text)
	default:
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?",
			text, text, phone,
		)
	}

	var clients []models.Client
	if err := q.Order("name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ClientGormRepository) GetClient(
	ctx context.Context,
	organizationID uint,
	clientID uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", clientID, organizationID).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientGormRepository) CreateClient(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientGormRepository) UpdateClient(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *ClientGormRepository) DeleteClient(
	ctx context.Context,
	organizationID uint,
	clientID uint,
) error {
	return deleteScoped(ctx, r.db, &models.Client{}, organizationID, clientID)
}

// ClientSearchPatterns monta os padrões LIKE da busca de clientes: texto em
// minúsculas para nome e e-mail, e só dígitos para o telefone, que é gravado
// normalizado. Padrão vazio significa sem filtro.
func ClientSearchPatterns(query string) (text, phone string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", ""
	}
	text = "%" + validators.EscapeLike(query) + "%"
	if digits := validators.NormalizePhone(query); strings.Trim(digits, "+") != "" {
		phone = "%" + digits + "%"
	}
	return text, phone
}

// --------------------------------------------------
// Professionals
// --------------------------------------------------

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) ListProfessionals(
	ctx context.Context,
	organizationID uint,
) ([]models.Professional, error) {

	var ps []models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC, start_time ASC")
		}).
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *ProfessionalGormRepository) GetProfessional(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week ASC, start_time ASC")
		}).
		Where("id = ? AND organization_id = ?", professionalID, organizationID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) CreateProfessional(ctx context.Context, p *models.Professional) error {
	return r.db.WithContext(ctx).Omit("Availability").Create(p).Error
}

// UpdateProfessional não toca na disponibilidade, que tem operação própria.
func (r *ProfessionalGormRepository) UpdateProfessional(ctx context.Context, p *models.Professional) error {
	return r.db.WithContext(ctx).Omit("Availability").Save(p).Error
}

func (r *ProfessionalGormRepository) DeleteProfessional(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
) error {
	return deleteScoped(ctx, r.db, &models.Professional{}, organizationID, professionalID)
}

func deleteScoped(ctx context.Context, db *gorm.DB, model any, organizationID, id uint) error {
	res := db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", id, organizationID).
		Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Compile-time check
var (
	_ directory.ClientRepository       = (*ClientGormRepository)(nil)
	_ directory.ProfessionalRepository = (*ProfessionalGormRepository)(nil)
)
