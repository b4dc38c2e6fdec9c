package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

type DeleteAppointment struct {
	repo      domain.Repository
	publisher realtime.Publisher
}

func NewDeleteAppointment(
	repo domain.Repository,
	publisher realtime.Publisher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:      repo,
		publisher: publisher,
	}
}

// Execute remove a linha definitivamente.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, sess.OrganizationID, appointmentID); err != nil {
		return notFoundAs(err, "appointment_not_found")
	}

	publishChange(ctx, uc.publisher, realtime.KindDelete, &models.Appointment{
		ID:             appointmentID,
		OrganizationID: sess.OrganizationID,
	})
	return nil
}
