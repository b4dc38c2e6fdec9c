package appointment

import (
	"sort"
	"strings"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DaySchedule struct {
	Enabled bool       `json:"enabled"`
	Window  TimeWindow `json:"window"`
}

// WeeklySchedule mapeia o nome do dia para o expediente daquele dia. Só cabe
// uma janela contínua por dia.
type WeeklySchedule map[string]DaySchedule

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,

	"domingo": time.Sunday,
	"segunda": time.Monday,
	"terca":   time.Tuesday,
	"terça":   time.Tuesday,
	"quarta":  time.Wednesday,
	"quinta":  time.Thursday,
	"sexta":   time.Friday,
	"sabado":  time.Saturday,
	"sábado":  time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// NormalizeWindow valida um par HH:MM e devolve a grafia canônica.
func NormalizeWindow(w TimeWindow) (TimeWindow, error) {
	start, err := time.Parse(TimeLayout, strings.TrimSpace(w.Start))
	if err != nil {
		return TimeWindow{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	end, err := time.Parse(TimeLayout, strings.TrimSpace(w.End))
	if err != nil {
		return TimeWindow{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	if !start.Before(end) {
		return TimeWindow{}, httperr.ErrBusiness("invalid_time_window")
	}
	return TimeWindow{
		Start: start.Format(TimeLayout),
		End:   end.Format(TimeLayout),
	}, nil
}

// Windows converte a agenda em uma linha por dia habilitado, ordenadas por
// dia da semana. Dias desabilitados não geram linha.
func (s WeeklySchedule) Windows(professionalID uint) ([]models.AvailabilityWindow, error) {
	seen := make(map[time.Weekday]bool, len(s))
	out := make([]models.AvailabilityWindow, 0, len(s))

	for name, day := range s {
		wd, ok := ParseWeekday(name)
		if !ok || seen[wd] {
			return nil, httperr.ErrBusiness("invalid_weekday")
		}
		seen[wd] = true

		if !day.Enabled {
			continue
		}

		w, err := NormalizeWindow(day.Window)
		if err != nil {
			return nil, err
		}

		out = append(out, models.AvailabilityWindow{
			ProfessionalID: professionalID,
			DayOfWeek:      int(wd),
			StartTime:      w.Start,
			EndTime:        w.End,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DayOfWeek < out[j].DayOfWeek
	})
	return out, nil
}

// ScheduleFromWindows monta a visão semanal com os sete dias. Quando um dia
// tem mais de uma janela, vale a que começa primeiro.
func ScheduleFromWindows(windows []models.AvailabilityWindow) WeeklySchedule {
	s := make(WeeklySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		s[strings.ToLower(d.String())] = DaySchedule{}
	}

	for _, w := range windows {
		if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
			continue
		}
		key := strings.ToLower(time.Weekday(w.DayOfWeek).String())
		cur := s[key]
		if cur.Enabled && cur.Window.Start <= w.StartTime {
			continue
		}
		s[key] = DaySchedule{
			Enabled: true,
			Window:  TimeWindow{Start: w.StartTime, End: w.EndTime},
		}
	}
	return s
}
