package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

// ListInput chega da query string; From e To são datas YYYY-MM-DD e To é
// inclusivo.
type ListInput struct {
	ProfessionalID uint
	ClientID       uint
	Status         string
	From           string
	To             string
}

type ListAppointments struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointments(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		loc:  loc,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	sess session.Session,
	in ListInput,
) ([]dto.AppointmentListDTO, error) {

	filter, err := BuildFilter(in, uc.loc)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointments(ctx, sess.OrganizationID, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewAppointmentList(appointments), nil
}

// BuildFilter converte a entrada textual em domain.Filter.
func BuildFilter(in ListInput, loc *time.Location) (domain.Filter, error) {
	f := domain.Filter{
		ProfessionalID: in.ProfessionalID,
		ClientID:       in.ClientID,
	}

	if s := strings.TrimSpace(in.Status); s != "" {
		status, err := domain.NormalizeStatus(s)
		if err != nil {
			return domain.Filter{}, err
		}
		f.Status = string(status)
	}

	if in.From != "" {
		from, err := time.ParseInLocation(domain.DateLayout, in.From, loc)
		if err != nil {
			return domain.Filter{}, httperr.ErrBusiness("invalid_date")
		}
		f.From = &from
	}

	if in.To != "" {
		to, err := time.ParseInLocation(domain.DateLayout, in.To, loc)
		if err != nil {
			return domain.Filter{}, httperr.ErrBusiness("invalid_date")
		}
		to = to.AddDate(0, 0, 1)
		f.To = &to
	}

	return f, nil
}
