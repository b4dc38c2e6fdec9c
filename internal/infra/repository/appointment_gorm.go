package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Professional / Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetProfessional(
	ctx context.Context,
	organizationID uint,
	professionalID uint,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", professionalID, organizationID).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentGormRepository) FindProfessionalsByName(
	ctx context.Context,
	organizationID uint,
	name string,
) ([]models.Professional, error) {

	var ps []models.Professional
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND name = ?", organizationID, name).
		Order("id ASC").
		Find(&ps).Error; err != nil {
		return nil, err
	}
	return ps, nil
}

func (r *AppointmentGormRepository) GetClient(
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

func (r *AppointmentGormRepository) FindClientsByName(
	ctx context.Context,
	organizationID uint,
	name string,
) ([]models.Client, error) {

	var cs []models.Client
	if err := r.db.WithContext(ctx).
		Where("organization_id = ? AND name = ?", organizationID, name).
		Order("id ASC").
		Find(&cs).Error; err != nil {
		return nil, err
	}
	return cs, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	newClient *models.Client,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if newClient != nil {
			if err := tx.Create(newClient).Error; err != nil {
				return err
			}
			ap.ClientID = newClient.ID
		}

		// Omit evita que o gorm tente upsert das associações vazias.
		return tx.Omit("Professional", "Client").Create(ap).Error
	})
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	organizationID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Professional").
		Preload("Client").
		Where("id = ? AND organization_id = ?", appointmentID, organizationID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// UpdateAppointment grava os campos editáveis. Linha apagada no meio do
// caminho vira gorm.ErrRecordNotFound, nunca um novo insert.
func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND organization_id = ?", ap.ID, ap.OrganizationID).
		Select("ProfessionalID", "ClientID", "StartTime", "EndTime", "Status", "Notes", "UpdatedAt").
		Updates(ap)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	organizationID uint,
	appointmentID uint,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND organization_id = ?", appointmentID, organizationID).
		Delete(&models.Appointment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	organizationID uint,
	filter domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Professional").
		Preload("Client").
		Where("organization_id = ?", organizationID)

	if filter.ProfessionalID != 0 {
		q = q.Where("professional_id = ?", filter.ProfessionalID)
	}
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		q = q.Where("start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("start_time < ?", *filter.To)
	}

	var apps []models.Appointment
	if err := q.
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAvailability(
	ctx context.Context,
	professionalID uint,
) ([]models.AvailabilityWindow, error) {

	var ws []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("day_of_week ASC, start_time ASC").
		Find(&ws).Error; err != nil {
		return nil, err
	}
	return ws, nil
}

func (r *AppointmentGormRepository) ReplaceAvailability(
	ctx context.Context,
	professionalID uint,
	windows []models.AvailabilityWindow,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ?", professionalID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
