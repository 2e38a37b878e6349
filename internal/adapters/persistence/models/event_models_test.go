package models

import (
	"testing"
	"time"

	"campushub/internal/core/domain"
)

func testEvent() *Event {
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)
	return &Event{
		ID:        "ev-window",
		Title:     "Tech Symposium",
		StartDate: day,
		EndDate:   day,
		StartTime: "10:00",
		EndTime:   "16:00",
	}
}

func TestEventWindowStatus(t *testing.T) {
	event := testEvent()
	start := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 14, 16, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		now  time.Time
		want domain.WindowStatus
	}{
		{"well before start", start.Add(-2 * time.Hour), domain.WindowNotStarted},
		{"one second before start", start.Add(-time.Second), domain.WindowNotStarted},
		{"exactly at start", start, domain.WindowOk},
		{"mid event", start.Add(3 * time.Hour), domain.WindowOk},
		{"exactly at end", end, domain.WindowOk},
		{"one second past end", end.Add(time.Second), domain.WindowEnded},
		{"next day", end.Add(24 * time.Hour), domain.WindowEnded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := event.WindowStatus(tt.now); got != tt.want {
				t.Errorf("WindowStatus(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestEventMultiDayWindow(t *testing.T) {
	event := testEvent()
	event.EndDate = event.StartDate.AddDate(0, 0, 2)

	middleNight := time.Date(2026, 3, 15, 2, 0, 0, 0, time.Local)
	if got := event.WindowStatus(middleNight); got != domain.WindowOk {
		t.Errorf("WindowStatus() mid multi-day event = %v, want %v", got, domain.WindowOk)
	}
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		hhmm string
		want time.Time
	}{
		{"hours and minutes", "09:30", time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)},
		{"with seconds", "09:30:45", time.Date(2026, 3, 14, 9, 30, 45, 0, time.Local)},
		{"garbage falls back to midnight", "noonish", time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)},
		{"empty falls back to midnight", "", time.Date(2026, 3, 14, 0, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := combineDateTime(date, tt.hhmm); !got.Equal(tt.want) {
				t.Errorf("combineDateTime(%q) = %v, want %v", tt.hhmm, got, tt.want)
			}
		})
	}
}

func TestAttendanceState(t *testing.T) {
	entry := time.Date(2026, 3, 14, 10, 5, 0, 0, time.Local)
	exit := entry.Add(90 * time.Minute)

	tests := []struct {
		name string
		att  *EventAttendance
		want domain.AttendanceState
	}{
		{"nil record", nil, domain.StateAbsent},
		{"no entry time", &EventAttendance{}, domain.StateAbsent},
		{"entered only", &EventAttendance{EntryTime: &entry}, domain.StateEntered},
		{"entered and exited", &EventAttendance{EntryTime: &entry, ExitTime: &exit}, domain.StateCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.att.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}
