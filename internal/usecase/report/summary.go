package report

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucappointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

type AppointmentLister interface {
	ListAppointments(
		ctx context.Context,
		organizationID uint,
		filter domain.Filter,
	) ([]models.Appointment, error)
}

type ProfessionalTotal struct {
	ProfessionalID   uint   `json:"professional_id"`
	ProfessionalName string `json:"professional_name"`
	Total            int    `json:"total"`
}

type DayTotal struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

type Summary struct {
	From            string              `json:"from"`
	To              string              `json:"to"`
	Total           int                 `json:"total"`
	ByStatus        map[string]int      `json:"by_status"`
	ByProfessional  []ProfessionalTotal `json:"by_professional"`
	ByDay           []DayTotal          `json:"by_day"`
	DistinctClients int                 `json:"distinct_clients"`
}

type GetSummary struct {
	repo AppointmentLister
	loc  *time.Location
	now  func() time.Time
}

func NewGetSummary(repo AppointmentLister, loc *time.Location) *GetSummary {
	return &GetSummary{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// Execute resume o período [from, to]. Sem datas, usa o mês corrente.
func (uc *GetSummary) Execute(
	ctx context.Context,
	sess session.Session,
	from, to string,
) (*Summary, error) {

	if from == "" && to == "" {
		start, end := timezone.MonthBounds(uc.now().In(uc.loc))
		from = start.Format(domain.DateLayout)
		to = end.AddDate(0, 0, -1).Format(domain.DateLayout)
	}

	filter, err := ucappointment.BuildFilter(ucappointment.ListInput{
		From: from,
		To:   to,
	}, uc.loc)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListAppointments(ctx, sess.OrganizationID, filter)
	if err != nil {
		return nil, err
	}

	s := Summarize(aps, uc.loc)
	s.From = from
	s.To = to
	return &s, nil
}

// Summarize agrega a lista já filtrada. Os quatro status conhecidos sempre
// aparecem em ByStatus, mesmo zerados.
func Summarize(aps []models.Appointment, loc *time.Location) Summary {
	s := Summary{
		Total: len(aps),
		ByStatus: map[string]int{
			string(domain.StatusPending):   0,
			string(domain.StatusConfirmed): 0,
			string(domain.StatusCancelled): 0,
			string(domain.StatusCompleted): 0,
		},
		ByProfessional: []ProfessionalTotal{},
		ByDay:          []DayTotal{},
	}

	byProf := map[uint]*ProfessionalTotal{}
	byDay := map[string]int{}
	clients := map[uint]struct{}{}

	for _, ap := range aps {
		s.ByStatus[ap.Status]++

		pt, ok := byProf[ap.ProfessionalID]
		if !ok {
			pt = &ProfessionalTotal{
				ProfessionalID:   ap.ProfessionalID,
				ProfessionalName: ap.Professional.Name,
			}
			byProf[ap.ProfessionalID] = pt
		}
		pt.Total++

		byDay[ap.StartTime.In(loc).Format(domain.DateLayout)]++
		clients[ap.ClientID] = struct{}{}
	}

	for _, pt := range byProf {
		s.ByProfessional = append(s.ByProfessional, *pt)
	}
	sort.Slice(s.ByProfessional, func(i, j int) bool {
		a, b := s.ByProfessional[i], s.ByProfessional[j]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.ProfessionalID < b.ProfessionalID
	})

	for day, total := range byDay {
		s.ByDay = append(s.ByDay, DayTotal{Date: day, Total: total})
	}
	sort.Slice(s.ByDay, func(i, j int) bool {
		return s.ByDay[i].Date < s.ByDay[j].Date
	})

	s.DistinctClients = len(clients)
	return s
}
