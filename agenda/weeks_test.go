package agenda

import (
	"errors"
	"testing"
	"time"

	"inka-simulator/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOf(t *testing.T) {
	cycleStart := date(2025, time.January, 6) // lunes

	tests := []struct {
		name string
		day  time.Time
		want int
	}{
		{"primer día del ciclo", date(2025, time.January, 6), 1},
		{"último día de la semana 1", date(2025, time.January, 12), 1},
		{"primer día de la semana 2", date(2025, time.January, 13), 2},
		{"semana 10", date(2025, time.March, 10), 10},
		{"un año después", date(2026, time.January, 5), 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, err := WeekOf(cycleStart, tt.day)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if week.Number != tt.want {
				t.Errorf("WeekOf(%s) = %d, want %d", tt.day.Format("2006-01-02"), week.Number, tt.want)
			}
			if tt.day.Before(week.Start) || tt.day.After(week.End) {
				t.Errorf("day %s outside week range [%s, %s]",
					tt.day.Format("2006-01-02"), week.Start.Format("2006-01-02"), week.End.Format("2006-01-02"))
			}
		})
	}
}

func TestWeekOf_BeforeCycleStart(t *testing.T) {
	cycleStart := date(2025, time.January, 6)

	_, err := WeekOf(cycleStart, date(2025, time.January, 5))
	var invalid *domain.InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
}

func TestWeekRange(t *testing.T) {
	cycleStart := date(2025, time.January, 6)

	week := WeekRange(cycleStart, 3)
	if !week.Start.Equal(date(2025, time.January, 20)) {
		t.Errorf("expected start 2025-01-20, got %s", week.Start.Format("2006-01-02"))
	}
	if !week.End.Equal(date(2025, time.January, 26)) {
		t.Errorf("expected end 2025-01-26, got %s", week.End.Format("2006-01-02"))
	}
}
