package assistant

import (
	"fmt"
	"time"
)

var weekdaysPt = map[time.Weekday]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var monthsPt = map[time.Month]string{
	time.January:   "janeiro",
	time.February:  "fevereiro",
	time.March:     "março",
	time.April:     "abril",
	time.May:       "maio",
	time.June:      "junho",
	time.July:      "julho",
	time.August:    "agosto",
	time.September: "setembro",
	time.October:   "outubro",
	time.November:  "novembro",
	time.December:  "dezembro",
}

// DateFormatter renders timestamps the way the assistant speaks about
// them, always in the fixed target timezone.
type DateFormatter struct {
	loc *time.Location
}

func NewDateFormatter(loc *time.Location) *DateFormatter {
	return &DateFormatter{loc: loc}
}

func (f *DateFormatter) Location() *time.Location {
	return f.loc
}

// Humanize phrases an event timestamp relative to now: today, tomorrow,
// a weekday within the current week (weeks start Monday), or an explicit
// day-of-month. A nil event means an unscheduled note.
func (f *DateFormatter) Humanize(t *time.Time, now time.Time) string {
	if t == nil {
		return "em data indefinida"
	}

	ev := t.In(f.loc)
	n := now.In(f.loc)
	hora := ev.Format("15:04")

	switch {
	case sameDay(ev, n):
		return "hoje, às " + hora
	case sameDay(ev, n.AddDate(0, 0, 1)):
		return "amanhã, às " + hora
	case weekStart(ev).Equal(weekStart(n)):
		return fmt.Sprintf("este %s, às %s", weekdaysPt[ev.Weekday()], hora)
	default:
		return fmt.Sprintf("no dia %d de %s, às %s", ev.Day(), monthsPt[ev.Month()], hora)
	}
}

// Clock renders the full localized wall-clock line used in the system
// directive, e.g. "segunda-feira, 2 de junho de 2025, 10:04".
func (f *DateFormatter) Clock(now time.Time) string {
	n := now.In(f.loc)
	return fmt.Sprintf("%s, %d de %s de %d, %s",
		weekdaysPt[n.Weekday()], n.Day(), monthsPt[n.Month()], n.Year(), n.Format("15:04"))
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func weekStart(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -daysSinceMonday)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}
