package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/realtime"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

// UpdateAppointmentInput: campos nil ficam como estão.
type UpdateAppointmentInput struct {
	Status *string
	Date   *string
	Time   *string
	Notes  *string
}

type UpdateAppointment struct {
	repo      domain.Repository
	publisher realtime.Publisher
	loc       *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	publisher realtime.Publisher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		publisher: publisher,
		loc:       loc,
	}
}

// Execute aplica as mudanças. Mudar data ou hora recalcula início e fim;
// mudar só o status não mexe nos horários. Última escrita vence.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	sess session.Session,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, sess.OrganizationID, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	if in.Status != nil {
		status, err := domain.NormalizeStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		ap.Status = string(status)
	}

	if err := domain.Reschedule(ap, in.Date, in.Time, uc.loc); err != nil {
		return nil, err
	}

	if in.Notes != nil {
		ap.Notes = strings.TrimSpace(*in.Notes)
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, notFoundAs(err, "appointment_not_found")
	}

	publishChange(ctx, uc.publisher, realtime.KindUpdate, ap)
	return ap, nil
}
