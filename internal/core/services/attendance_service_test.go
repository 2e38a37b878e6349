package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"campushub/internal/adapters/persistence/models"
	"campushub/internal/core/domain"
	"campushub/internal/pkg/qrtoken"

	"gorm.io/gorm"
)

// fakeEventRepo serves events from memory; only the methods the scan and
// registration paths touch are functional.
type fakeEventRepo struct {
	events     map[string]*models.Event
	getByIDCnt int

	regCount     int64
	countRegCnt  int
	createRegErr error
	regs         []*models.EventRegistration
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*models.Event, error) {
	f.getByIDCnt++
	ev, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ev, nil
}

func (f *fakeEventRepo) Create(ctx context.Context, event *models.Event) error { return nil }
func (f *fakeEventRepo) UpdateFields(ctx context.Context, id string, updates map[string]interface{}) error {
	return nil
}
func (f *fakeEventRepo) ListPublished(ctx context.Context, eventType string, offset, limit int) ([]models.Event, int64, error) {
	return nil, 0, nil
}
func (f *fakeEventRepo) ListByOrganizer(ctx context.Context, organizerID uint) ([]models.Event, error) {
	return nil, nil
}
func (f *fakeEventRepo) CountRegistrations(ctx context.Context, eventID string) (int64, error) {
	f.countRegCnt++
	return f.regCount, nil
}
func (f *fakeEventRepo) GetRegistration(ctx context.Context, eventID string, userID uint) (*models.EventRegistration, error) {
	return nil, nil
}
func (f *fakeEventRepo) CreateRegistration(ctx context.Context, reg *models.EventRegistration) error {
	if f.createRegErr != nil {
		return f.createRegErr
	}
	f.regs = append(f.regs, reg)
	return nil
}
func (f *fakeEventRepo) DeleteRegistration(ctx context.Context, eventID string, userID uint) error {
	return nil
}
func (f *fakeEventRepo) ListRegistrationsByUser(ctx context.Context, userID uint) ([]models.EventRegistration, error) {
	return nil, nil
}
func (f *fakeEventRepo) GetBookmark(ctx context.Context, eventID string, userID uint) (*models.EventBookmark, error) {
	return nil, nil
}
func (f *fakeEventRepo) CreateBookmark(ctx context.Context, bm *models.EventBookmark) error {
	return nil
}
func (f *fakeEventRepo) DeleteBookmark(ctx context.Context, eventID string, userID uint) error {
	return nil
}
func (f *fakeEventRepo) ListBookmarksByUser(ctx context.Context, userID uint) ([]models.EventBookmark, error) {
	return nil, nil
}

// fakeAttendanceRepo keeps records in memory and records every write so tests
// can assert nothing was touched on a rejected scan.
type fakeAttendanceRepo struct {
	records map[string]*models.EventAttendance // keyed by attKey(eventID, userID)

	created     []*models.EventAttendance
	createErr   error
	completeErr error

	completedID string
	lastUpdates map[string]interface{}
	lastOd      *models.OdRequest
	completeCnt int
}

func attKey(eventID string, userID uint) string {
	return fmt.Sprintf("%s/%d", eventID, userID)
}

func (f *fakeAttendanceRepo) GetByEventAndUser(ctx context.Context, eventID string, userID uint) (*models.EventAttendance, error) {
	return f.records[attKey(eventID, userID)], nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, att *models.EventAttendance) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, att)
	if f.records == nil {
		f.records = map[string]*models.EventAttendance{}
	}
	f.records[attKey(att.EventID, att.UserID)] = att
	return nil
}

func (f *fakeAttendanceRepo) CompleteWithOdRequest(ctx context.Context, attendanceID string, updates map[string]interface{}, od *models.OdRequest) error {
	f.completeCnt++
	if f.completeErr != nil {
		return f.completeErr
	}
	f.completedID = attendanceID
	f.lastUpdates = updates
	f.lastOd = od
	return nil
}

func (f *fakeAttendanceRepo) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.EventAttendance, int64, error) {
	return nil, 0, nil
}
func (f *fakeAttendanceRepo) ListByEvent(ctx context.Context, eventID string) ([]models.EventAttendance, error) {
	return nil, nil
}
func (f *fakeAttendanceRepo) InvalidateStaleEntries(ctx context.Context, enteredBefore time.Time) (int64, error) {
	return 0, nil
}

// scanFixture wires a service around one live event with the clock pinned
// inside its window.
type scanFixture struct {
	svc     *AttendanceService
	attRepo *fakeAttendanceRepo
	evRepo  *fakeEventRepo
	event   *models.Event
	now     time.Time
}

func newScanFixture(t *testing.T) *scanFixture {
	t.Helper()

	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.Local)
	now := time.Date(2026, 4, 2, 11, 0, 0, 0, time.Local)

	event := &models.Event{
		ID:                       "ev-1",
		Title:                    "Hackathon Kickoff",
		StartDate:                day,
		EndDate:                  day,
		StartTime:                "09:00",
		EndTime:                  "17:00",
		MinimumAttendanceMinutes: 45,
		IsOdEligible:             true,
		QrEnabled:                true,
		IsPublished:              true,
	}

	attRepo := &fakeAttendanceRepo{records: map[string]*models.EventAttendance{}}
	evRepo := &fakeEventRepo{events: map[string]*models.Event{event.ID: event}}

	svc := NewAttendanceService(attRepo, evRepo)
	svc.now = func() time.Time { return now }

	return &scanFixture{svc: svc, attRepo: attRepo, evRepo: evRepo, event: event, now: now}
}

func (fx *scanFixture) payload(t *testing.T) string {
	t.Helper()
	raw, err := qrtoken.Encode(fx.event.ID, fx.now)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	return raw
}

// enter seeds an open record entered minutesAgo before the pinned clock
func (fx *scanFixture) enter(minutesAgo int) *models.EventAttendance {
	entry := fx.now.Add(-time.Duration(minutesAgo) * time.Minute)
	att := &models.EventAttendance{
		ID:          "att-1",
		EventID:     fx.event.ID,
		UserID:      7,
		EntryTime:   &entry,
		QrScanCount: 1,
		Status:      domain.AttendancePending,
	}
	fx.attRepo.records[attKey(fx.event.ID, att.UserID)] = att
	return att
}

func TestProcessScanEntry(t *testing.T) {
	fx := newScanFixture(t)

	result, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if err != nil {
		t.Fatalf("ProcessScan() error = %v", err)
	}

	if result.Kind != domain.ScanEntry {
		t.Errorf("Kind = %v, want %v", result.Kind, domain.ScanEntry)
	}
	if result.Status != domain.AttendancePending {
		t.Errorf("Status = %v, want pending", result.Status)
	}
	if result.OdCreated {
		t.Error("OdCreated = true on an entry scan")
	}

	if len(fx.attRepo.created) != 1 {
		t.Fatalf("created %d records, want 1", len(fx.attRepo.created))
	}
	att := fx.attRepo.created[0]
	if att.UserID != 7 || att.EventID != "ev-1" {
		t.Errorf("record = (%s, %d), want (ev-1, 7)", att.EventID, att.UserID)
	}
	if att.EntryTime == nil || !att.EntryTime.Equal(fx.now) {
		t.Errorf("EntryTime = %v, want %v", att.EntryTime, fx.now)
	}
	if att.QrScanCount != 1 {
		t.Errorf("QrScanCount = %d, want 1", att.QrScanCount)
	}
}

func TestProcessScanSecondUserGetsOwnEntry(t *testing.T) {
	fx := newScanFixture(t)
	fx.enter(30) // user 7 is already inside

	result, err := fx.svc.ProcessScan(context.Background(), 8, fx.payload(t))
	if err != nil {
		t.Fatalf("ProcessScan() error = %v", err)
	}
	if result.Kind != domain.ScanEntry {
		t.Errorf("Kind = %v, want %v — another user's open record must not be touched", result.Kind, domain.ScanEntry)
	}
	if len(fx.attRepo.created) != 1 || fx.attRepo.created[0].UserID != 8 {
		t.Fatalf("created records = %+v, want one entry for user 8", fx.attRepo.created)
	}
	if fx.attRepo.completeCnt != 0 {
		t.Error("user 7's open record was completed by user 8's scan")
	}
}

func TestProcessScanExitVerifiedWithOd(t *testing.T) {
	fx := newScanFixture(t)
	fx.enter(90)

	result, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if err != nil {
		t.Fatalf("ProcessScan() error = %v", err)
	}

	if result.Kind != domain.ScanExit {
		t.Errorf("Kind = %v, want %v", result.Kind, domain.ScanExit)
	}
	if result.Status != domain.AttendanceVerified {
		t.Errorf("Status = %v, want verified", result.Status)
	}
	if result.TotalMinutes == nil || *result.TotalMinutes != 90 {
		t.Errorf("TotalMinutes = %v, want 90", result.TotalMinutes)
	}
	if !result.OdCreated {
		t.Error("OdCreated = false, want an OD request for a qualifying stay")
	}

	if fx.attRepo.lastOd == nil {
		t.Fatal("no OD request passed to the store")
	}
	od := fx.attRepo.lastOd
	if od.UserID != 7 || od.EventID != "ev-1" {
		t.Errorf("OD = (%s, %d), want (ev-1, 7)", od.EventID, od.UserID)
	}
	if od.AttendanceID == nil || *od.AttendanceID != "att-1" {
		t.Errorf("OD attendance id = %v, want att-1", od.AttendanceID)
	}
	if od.Status != domain.OdPending {
		t.Errorf("OD status = %v, want pending", od.Status)
	}
	if fx.attRepo.lastUpdates["status"] != domain.AttendanceVerified {
		t.Errorf("stored status = %v, want verified", fx.attRepo.lastUpdates["status"])
	}
}

func TestProcessScanExitBelowMinimum(t *testing.T) {
	fx := newScanFixture(t)
	fx.enter(20)

	result, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if err != nil {
		t.Fatalf("ProcessScan() error = %v", err)
	}

	if result.Status != domain.AttendancePending {
		t.Errorf("Status = %v, want pending for a 20 minute stay", result.Status)
	}
	if result.OdCreated {
		t.Error("OdCreated = true for a stay below the minimum")
	}
	if fx.attRepo.lastOd != nil {
		t.Error("an OD request reached the store for a stay below the minimum")
	}
}

func TestProcessScanExitAtExactMinimum(t *testing.T) {
	fx := newScanFixture(t)
	fx.enter(45)

	result, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if err != nil {
		t.Fatalf("ProcessScan() error = %v", err)
	}
	if result.Status != domain.AttendanceVerified {
		t.Errorf("Status = %v, want verified at exactly the minimum", result.Status)
	}
	if !result.OdCreated {
		t.Error("OdCreated = false at exactly the minimum")
	}
}

func TestProcessScanExitNotOdEligible(t *testing.T) {
	fx := newScanFixture(t)
	fx.event.IsOdEligible = false
	fx.enter(90)

	result, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if err != nil {
		t.Fatalf("ProcessScan() error = %v", err)
	}

	if result.Status != domain.AttendanceVerified {
		t.Errorf("Status = %v, want verified", result.Status)
	}
	if result.OdCreated || fx.attRepo.lastOd != nil {
		t.Error("OD request emitted for an event that is not OD eligible")
	}
}

func TestProcessScanThirdScanRejected(t *testing.T) {
	fx := newScanFixture(t)
	att := fx.enter(90)
	exit := fx.now.Add(-10 * time.Minute)
	att.ExitTime = &exit

	_, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if !errors.Is(err, domain.ErrAlreadyRecorded) {
		t.Fatalf("ProcessScan() error = %v, want ErrAlreadyRecorded", err)
	}
	if fx.attRepo.completeCnt != 0 || len(fx.attRepo.created) != 0 {
		t.Error("a completed record was written to again")
	}
}

func TestProcessScanWindowGates(t *testing.T) {
	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{
			name:    "before window",
			now:     time.Date(2026, 4, 2, 8, 30, 0, 0, time.Local),
			wantErr: domain.ErrEventNotStarted,
		},
		{
			name:    "after window",
			now:     time.Date(2026, 4, 2, 17, 30, 0, 0, time.Local),
			wantErr: domain.ErrEventEnded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newScanFixture(t)
			fx.now = tt.now
			fx.svc.now = func() time.Time { return tt.now }

			_, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ProcessScan() error = %v, want %v", err, tt.wantErr)
			}
			if len(fx.attRepo.created) != 0 || fx.attRepo.completeCnt != 0 {
				t.Error("attendance store written outside the event window")
			}
		})
	}
}

func TestProcessScanExpiredTokenRejectedBeforeLookup(t *testing.T) {
	fx := newScanFixture(t)

	stale, err := qrtoken.Encode(fx.event.ID, fx.now.Add(-10*time.Minute))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	_, err = fx.svc.ProcessScan(context.Background(), 7, stale)
	if !errors.Is(err, domain.ErrScanExpired) {
		t.Fatalf("ProcessScan() error = %v, want ErrScanExpired", err)
	}
	if fx.evRepo.getByIDCnt != 0 {
		t.Error("event store queried for an expired token")
	}
}

func TestProcessScanMalformedToken(t *testing.T) {
	fx := newScanFixture(t)

	_, err := fx.svc.ProcessScan(context.Background(), 7, "not-a-token")
	if !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("ProcessScan() error = %v, want ErrTokenMalformed", err)
	}
}

func TestProcessScanUnknownEvent(t *testing.T) {
	fx := newScanFixture(t)

	raw, err := qrtoken.Encode("no-such-event", fx.now)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	_, err = fx.svc.ProcessScan(context.Background(), 7, raw)
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("ProcessScan() error = %v, want ErrEventNotFound", err)
	}
}

func TestProcessScanQrDisabled(t *testing.T) {
	fx := newScanFixture(t)
	fx.event.QrEnabled = false

	_, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if !errors.Is(err, domain.ErrScanDisabled) {
		t.Fatalf("ProcessScan() error = %v, want ErrScanDisabled", err)
	}
}

func TestProcessScanEntryRaceLoses(t *testing.T) {
	fx := newScanFixture(t)
	fx.attRepo.createErr = domain.ErrDuplicateEntry

	_, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if !errors.Is(err, domain.ErrAlreadyRecorded) {
		t.Fatalf("ProcessScan() error = %v, want ErrAlreadyRecorded", err)
	}
}

func TestProcessScanExitRaceLoses(t *testing.T) {
	fx := newScanFixture(t)
	fx.enter(90)
	fx.attRepo.completeErr = domain.ErrAlreadyRecorded

	_, err := fx.svc.ProcessScan(context.Background(), 7, fx.payload(t))
	if !errors.Is(err, domain.ErrAlreadyRecorded) {
		t.Fatalf("ProcessScan() error = %v, want ErrAlreadyRecorded", err)
	}
}
