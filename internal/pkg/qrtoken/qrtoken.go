package qrtoken

import (
	"encoding/json"
	"errors"
	"time"
)

// Freshness is how long a displayed QR payload stays scannable.
// Venue displays rotate the code, so anything older is treated as a replay.
const Freshness = 5 * time.Minute

var (
	ErrMalformed = errors.New("invalid QR code format")
	ErrExpired   = errors.New("QR code has expired")
)

// Payload is the wire format of an attendance QR code:
// a JSON object carrying the event and its issuance time
type Payload struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds of issuance
}

// IssuedAt returns the issuance instant of the payload
func (p *Payload) IssuedAt() time.Time {
	return time.UnixMilli(p.Timestamp)
}

// Decode parses a scanned QR string and validates its freshness against now.
// An expired token is rejected here, before any store access — nothing
// downstream is meaningful for a stale code.
func Decode(raw string, now time.Time) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, ErrMalformed
	}
	if p.EventID == "" || p.Timestamp == 0 {
		return nil, ErrMalformed
	}
	if now.Sub(p.IssuedAt()) > Freshness {
		return nil, ErrExpired
	}
	return &p, nil
}

// Encode produces the QR payload string for an event issued at now
func Encode(eventID string, now time.Time) (string, error) {
	b, err := json.Marshal(&Payload{EventID: eventID, Timestamp: now.UnixMilli()})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
