package qrtoken

import (
	"errors"
	"testing"
	"time"
)

func TestDecode(t *testing.T) {
	now := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name: "fresh payload",
			raw:  mustEncode(t, "ev-1", now.Add(-time.Minute)),
		},
		{
			name: "issued right now",
			raw:  mustEncode(t, "ev-1", now),
		},
		{
			name: "exactly at freshness boundary",
			raw:  mustEncode(t, "ev-1", now.Add(-Freshness)),
		},
		{
			name:    "one millisecond past freshness",
			raw:     mustEncode(t, "ev-1", now.Add(-Freshness-time.Millisecond)),
			wantErr: ErrExpired,
		},
		{
			name:    "ten minutes old",
			raw:     mustEncode(t, "ev-1", now.Add(-10*time.Minute)),
			wantErr: ErrExpired,
		},
		{
			name:    "not json",
			raw:     "EVENT:ev-1:1700000000",
			wantErr: ErrMalformed,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: ErrMalformed,
		},
		{
			name:    "missing event id",
			raw:     `{"timestamp":1760000000000}`,
			wantErr: ErrMalformed,
		},
		{
			name:    "missing timestamp",
			raw:     `{"event_id":"ev-1"}`,
			wantErr: ErrMalformed,
		},
		{
			name:    "wrong timestamp type",
			raw:     `{"event_id":"ev-1","timestamp":"soon"}`,
			wantErr: ErrMalformed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.raw, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && p.EventID != "ev-1" {
				t.Errorf("Decode() event id = %q, want %q", p.EventID, "ev-1")
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	issued := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)

	raw, err := Encode("3f9c2a10-aaaa-bbbb-cccc-000000000001", issued)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	p, err := Decode(raw, issued.Add(2*time.Minute))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if p.EventID != "3f9c2a10-aaaa-bbbb-cccc-000000000001" {
		t.Errorf("event id = %q", p.EventID)
	}
	if !p.IssuedAt().Equal(issued) {
		t.Errorf("IssuedAt() = %v, want %v", p.IssuedAt(), issued)
	}
}

func mustEncode(t *testing.T, eventID string, issued time.Time) string {
	t.Helper()
	raw, err := Encode(eventID, issued)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return raw
}
