package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FreeSlots lista os horários de SlotDuration dentro das janelas do dia que
// não colidem com agendamentos ativos. É apenas informativo: o agendamento
// não consulta a disponibilidade.
func FreeSlots(
	day time.Time,
	windows []models.AvailabilityWindow,
	booked []models.Appointment,
) []TimeSlot {

	loc := day.Location()
	parseHM := func(hm string) (time.Time, bool) {
		t, err := time.Parse(TimeLayout, hm)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(
			day.Year(), day.Month(), day.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		), true
	}

	slots := []TimeSlot{}
	for _, w := range windows {
		if w.DayOfWeek != int(day.Weekday()) {
			continue
		}
		winStart, ok1 := parseHM(w.StartTime)
		winEnd, ok2 := parseHM(w.EndTime)
		if !ok1 || !ok2 {
			continue
		}

		for cur := winStart; !cur.Add(SlotDuration).After(winEnd); cur = cur.Add(SlotDuration) {
			slotEnd := cur.Add(SlotDuration)
			if overlapsAny(cur, slotEnd, booked) {
				continue
			}
			slots = append(slots, TimeSlot{
				Start: cur.Format(TimeLayout),
				End:   slotEnd.Format(TimeLayout),
			})
		}
	}
	return slots
}

func overlapsAny(start, end time.Time, booked []models.Appointment) bool {
	for _, ap := range booked {
		if !Status(ap.Status).Blocks() {
			continue
		}
		if start.Before(ap.EndTime) && end.After(ap.StartTime) {
			return true
		}
	}
	return false
}
