package availability

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

type ScheduleView struct {
	ProfessionalID uint                        `json:"professional_id"`
	Schedule       domain.WeeklySchedule       `json:"schedule"`
	Windows        []models.AvailabilityWindow `json:"windows"`
}

// ======================================================
// SET
// ======================================================

type SetWeeklySchedule struct {
	repo domain.Repository
}

func NewSetWeeklySchedule(repo domain.Repository) *SetWeeklySchedule {
	return &SetWeeklySchedule{repo: repo}
}

// Execute substitui todas as janelas do profissional por uma linha por dia
// habilitado.
func (uc *SetWeeklySchedule) Execute(
	ctx context.Context,
	sess session.Session,
	professionalID uint,
	schedule domain.WeeklySchedule,
) (*ScheduleView, error) {

	if _, err := uc.repo.GetProfessional(ctx, sess.OrganizationID, professionalID); err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("professional_not_found")
		}
		return nil, err
	}

	windows, err := schedule.Windows(professionalID)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.ReplaceAvailability(ctx, professionalID, windows); err != nil {
		return nil, err
	}

	return &ScheduleView{
		ProfessionalID: professionalID,
		Schedule:       domain.ScheduleFromWindows(windows),
		Windows:        windows,
	}, nil
}

// ======================================================
// GET
// ======================================================

type GetWeeklySchedule struct {
	repo domain.Repository
}

func NewGetWeeklySchedule(repo domain.Repository) *GetWeeklySchedule {
	return &GetWeeklySchedule{repo: repo}
}

func (uc *GetWeeklySchedule) Execute(
	ctx context.Context,
	sess session.Session,
	professionalID uint,
) (*ScheduleView, error) {

	if _, err := uc.repo.GetProfessional(ctx, sess.OrganizationID, professionalID); err != nil {
		if httperr.IsRecordNotFound(err) {
			return nil, httperr.ErrNotFound("professional_not_found")
		}
		return nil, err
	}

	windows, err := uc.repo.ListAvailability(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	return &ScheduleView{
		ProfessionalID: professionalID,
		Schedule:       domain.ScheduleFromWindows(windows),
		Windows:        windows,
	}, nil
}
