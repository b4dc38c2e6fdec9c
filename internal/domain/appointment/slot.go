package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// SlotDuration é a duração fixa de todo agendamento.
const SlotDuration = 60 * time.Minute

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseStart combina data (YYYY-MM-DD) e hora (HH:MM) em um instante no fuso
// do negócio.
func ParseStart(date, hm string, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hm, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return start, nil
}

func EndFor(start time.Time) time.Time {
	return start.Add(SlotDuration)
}

// Reschedule move o agendamento para nova data e/ou hora. A parte não
// informada vem do início atual; o fim é sempre recalculado.
func Reschedule(ap *models.Appointment, date, hm *string, loc *time.Location) error {
	if date == nil && hm == nil {
		return nil
	}

	current := ap.StartTime.In(loc)
	d := current.Format(DateLayout)
	t := current.Format(TimeLayout)
	if date != nil {
		d = *date
	}
	if hm != nil {
		t = *hm
	}

	start, err := ParseStart(d, t, loc)
	if err != nil {
		return err
	}

	ap.StartTime = start
	ap.EndTime = EndFor(start)
	return nil
}
