package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// GetSlots mostra os horários livres de um profissional num dia. Serve só de
// referência para o calendário; CreateAppointment não a consulta.
type GetSlots struct {
	repo domain.Repository
	loc  *time.Location
}

func NewGetSlots(repo domain.Repository, loc *time.Location) *GetSlots {
	return &GetSlots{repo: repo, loc: loc}
}

func (uc *GetSlots) Execute(
	ctx context.Context,
	sess session.Session,
	professionalID uint,
	date string,
) ([]domain.TimeSlot, error) {

	day, err := time.ParseInLocation(domain.DateLayout, date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := uc.repo.GetProfessional(ctx, sess.OrganizationID, professionalID); err != nil {
		return nil, notFoundAs(err, "professional_not_found")
	}

	windows, err := uc.repo.ListAvailability(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	start, end := timezone.DayBounds(day)
	booked, err := uc.repo.ListAppointments(ctx, sess.OrganizationID, domain.Filter{
		ProfessionalID: professionalID,
		From:           &start,
		To:             &end,
	})
	if err != nil {
		return nil, err
	}

	return domain.FreeSlots(day, windows, booked), nil
}
