package report

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type Dashboard struct {
	Date  string                   `json:"date"`
	Today []dto.AppointmentListDTO `json:"today"`
	Month Summary                  `json:"month"`
}

type GetDashboard struct {
	repo AppointmentLister
	loc  *time.Location
	now  func() time.Time
}

func NewGetDashboard(repo AppointmentLister, loc *time.Location) *GetDashboard {
	return &GetDashboard{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

func (uc *GetDashboard) Execute(
	ctx context.Context,
	sess session.Session,
) (*Dashboard, error) {

	now := uc.now().In(uc.loc)
	monthStart, monthEnd := timezone.MonthBounds(now)

	aps, err := uc.repo.ListAppointments(ctx, sess.OrganizationID, domain.Filter{
		From: &monthStart,
		To:   &monthEnd,
	})
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timezone.DayBounds(now)
	out := &Dashboard{
		Date:  now.Format(domain.DateLayout),
		Today: []dto.AppointmentListDTO{},
		Month: Summarize(aps, uc.loc),
	}
	out.Month.From = monthStart.Format(domain.DateLayout)
	out.Month.To = monthEnd.AddDate(0, 0, -1).Format(domain.DateLayout)

	for _, ap := range aps {
		if !ap.StartTime.Before(dayStart) && ap.StartTime.Before(dayEnd) {
			out.Today = append(out.Today, dto.NewAppointmentListDTO(ap))
		}
	}

	return out, nil
}
