package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Filter restringe a listagem; campos zerados não filtram.
type Filter struct {
	ProfessionalID uint
	ClientID       uint
	Status         string
	From           *time.Time
	To             *time.Time
}

// Repository: toda operação recebe organizationID e só enxerga linhas dela.
// Registros ausentes retornam gorm.ErrRecordNotFound.
type Repository interface {
	// -------- Professional / Client --------
	GetProfessional(
		ctx context.Context,
		organizationID uint,
		professionalID uint,
	) (*models.Professional, error)

	FindProfessionalsByName(
		ctx context.Context,
		organizationID uint,
		name string,
	) ([]models.Professional, error)

	GetClient(
		ctx context.Context,
		organizationID uint,
		clientID uint,
	) (*models.Client, error)

	FindClientsByName(
		ctx context.Context,
		organizationID uint,
		name string,
	) ([]models.Client, error)

	// -------- Appointment --------

	// CreateAppointment grava newClient (quando não nil) e o agendamento na
	// mesma transação, preenchendo ap.ClientID com o cliente criado.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		newClient *models.Client,
	) error

	GetAppointment(
		ctx context.Context,
		organizationID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		organizationID uint,
		appointmentID uint,
	) error

	ListAppointments(
		ctx context.Context,
		organizationID uint,
		filter Filter,
	) ([]models.Appointment, error)

	// -------- Availability --------
	ListAvailability(
		ctx context.Context,
		professionalID uint,
	) ([]models.AvailabilityWindow, error)

	ReplaceAvailability(
		ctx context.Context,
		professionalID uint,
		windows []models.AvailabilityWindow,
	) error
}
