package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/core/domain"
)

func intPtr(n int) *int { return &n }

// newRegisterFixture wires an event service around one published event with
// the clock pinned before the event ends.
func newRegisterFixture(t *testing.T) (*EventService, *fakeEventRepo, *models.Event) {
	t.Helper()

	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.Local)

	event := &models.Event{
		ID:          "ev-1",
		Title:       "Design Sprint",
		StartDate:   day,
		EndDate:     day,
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsPublished: true,
	}

	evRepo := &fakeEventRepo{events: map[string]*models.Event{event.ID: event}}
	svc := NewEventService(evRepo)
	svc.now = func() time.Time { return now }

	return svc, evRepo, event
}

func TestRegisterCapacity(t *testing.T) {
	tests := []struct {
		name            string
		maxParticipants *int
		existing        int64
		wantErr         error
	}{
		{"seat available", intPtr(2), 1, nil},
		{"exactly full", intPtr(1), 1, domain.ErrEventFull},
		{"over full", intPtr(10), 15, domain.ErrEventFull},
		{"last seat", intPtr(10), 9, nil},
		{"unlimited", nil, 5000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, evRepo, event := newRegisterFixture(t)
			event.MaxParticipants = tt.maxParticipants
			evRepo.regCount = tt.existing

			reg, err := svc.Register(context.Background(), event.ID, 7)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Register() error = %v, want %v", err, tt.wantErr)
			}

			if tt.wantErr != nil {
				if len(evRepo.regs) != 0 {
					t.Error("a registration was stored for a full event")
				}
				return
			}

			if reg == nil || reg.UserID != 7 || reg.EventID != event.ID {
				t.Errorf("Register() = %+v, want registration for (ev-1, 7)", reg)
			}
			if len(evRepo.regs) != 1 {
				t.Errorf("stored %d registrations, want 1", len(evRepo.regs))
			}
		})
	}
}

func TestRegisterUnlimitedSkipsCapacityCount(t *testing.T) {
	svc, evRepo, event := newRegisterFixture(t)
	event.MaxParticipants = nil

	if _, err := svc.Register(context.Background(), event.ID, 7); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if evRepo.countRegCnt != 0 {
		t.Errorf("registrations counted %d times for an uncapped event, want 0", evRepo.countRegCnt)
	}
}

func TestRegisterGates(t *testing.T) {
	t.Run("unpublished event", func(t *testing.T) {
		svc, _, event := newRegisterFixture(t)
		event.IsPublished = false

		_, err := svc.Register(context.Background(), event.ID, 7)
		if !errors.Is(err, domain.ErrEventNotPublished) {
			t.Fatalf("Register() error = %v, want ErrEventNotPublished", err)
		}
	})

	t.Run("ended event", func(t *testing.T) {
		svc, _, event := newRegisterFixture(t)
		svc.now = func() time.Time {
			return time.Date(2026, 4, 2, 18, 0, 0, 0, time.Local)
		}

		_, err := svc.Register(context.Background(), event.ID, 7)
		if !errors.Is(err, domain.ErrEventEnded) {
			t.Fatalf("Register() error = %v, want ErrEventEnded", err)
		}
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _ := newRegisterFixture(t)

		_, err := svc.Register(context.Background(), "no-such-event", 7)
		if !errors.Is(err, domain.ErrEventNotFound) {
			t.Fatalf("Register() error = %v, want ErrEventNotFound", err)
		}
	})

	t.Run("already registered", func(t *testing.T) {
		svc, evRepo, event := newRegisterFixture(t)
		evRepo.createRegErr = domain.ErrDuplicateEntry

		_, err := svc.Register(context.Background(), event.ID, 7)
		if !errors.Is(err, domain.ErrAlreadyRegistered) {
			t.Fatalf("Register() error = %v, want ErrAlreadyRegistered", err)
		}
	})
}
