package assistant

import (
	"testing"
	"time"
)

func TestDateFormatter_Humanize(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	f := NewDateFormatter(loc)

	// Monday morning.
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, loc)

	at := func(y int, m time.Month, d, h, min int) *time.Time {
		ts := time.Date(y, m, d, h, min, 0, 0, loc)
		return &ts
	}

	tests := []struct {
		name  string
		event *time.Time
		want  string
	}{
		{
			name:  "same_day",
			event: at(2025, time.June, 2, 15, 0),
			want:  "hoje, às 15:00",
		},
		{
			name:  "next_day",
			event: at(2025, time.June, 3, 9, 0),
			want:  "amanhã, às 09:00",
		},
		{
			name:  "later_this_week",
			event: at(2025, time.June, 5, 9, 0),
			want:  "este quinta-feira, às 09:00",
		},
		{
			name:  "end_of_week_sunday",
			event: at(2025, time.June, 8, 20, 30),
			want:  "este domingo, às 20:30",
		},
		{
			name:  "next_week_gets_explicit_date",
			event: at(2025, time.June, 9, 9, 0),
			want:  "no dia 9 de junho, às 09:00",
		},
		{
			name:  "far_future",
			event: at(2025, time.July, 1, 9, 0),
			want:  "no dia 1 de julho, às 09:00",
		},
		{
			name:  "unscheduled",
			event: nil,
			want:  "em data indefinida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Humanize(tt.event, now); got != tt.want {
				t.Errorf("Humanize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDateFormatter_HumanizeConvertsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	f := NewDateFormatter(loc)

	// 18:00 UTC is 15:00 in São Paulo (UTC-3).
	now := time.Date(2025, time.June, 2, 10, 0, 0, 0, loc)
	event := time.Date(2025, time.June, 2, 18, 0, 0, 0, time.UTC)

	if got, want := f.Humanize(&event, now), "hoje, às 15:00"; got != want {
		t.Errorf("Humanize() = %q, want %q", got, want)
	}
}

func TestDateFormatter_Clock(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	f := NewDateFormatter(loc)

	now := time.Date(2025, time.June, 2, 10, 4, 0, 0, loc)
	if got, want := f.Clock(now), "segunda-feira, 2 de junho de 2025, 10:04"; got != want {
		t.Errorf("Clock() = %q, want %q", got, want)
	}
}
