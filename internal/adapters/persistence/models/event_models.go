package models

import (
	"time"

	"campushub/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Directory Tables
// ============================================================

// Organization represents organizations table (event organizers)
type Organization struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	LogoURL     *string   `gorm:"size:255" json:"logo_url"`
	IsVerified  bool      `gorm:"default:false" json:"is_verified"`
	OwnerUserID *uint     `gorm:"index" json:"owner_user_id"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Owner *User `gorm:"foreignKey:OwnerUserID" json:"owner,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Club represents clubs table (campus club directory)
type Club struct {
	ID               uint                `gorm:"primaryKey" json:"id"`
	Name             string              `gorm:"size:120;uniqueIndex;not null" json:"name"`
	Category         domain.ClubCategory `gorm:"size:30;not null;index" json:"category"`
	Description      *string             `gorm:"type:text" json:"description"`
	CoordinatorName  *string             `gorm:"size:120" json:"coordinator_name"`
	CoordinatorEmail *string             `gorm:"size:120" json:"coordinator_email"`
	CoordinatorPhone *string             `gorm:"size:20" json:"coordinator_phone"`
	LogoURL          *string             `gorm:"size:255" json:"logo_url"`
	JoinFormURL      *string             `gorm:"size:255" json:"join_form_url"`
	IsActive         bool                `gorm:"default:true" json:"is_active"`
	OrganizationID   *uint               `gorm:"index" json:"organization_id"`
	CreatedAt        time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}

func (Club) TableName() string {
	return "clubs"
}

// ClubMembership represents club_memberships table
type ClubMembership struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ClubID   uint      `gorm:"not null;uniqueIndex:idx_club_user" json:"club_id"`
	UserID   uint      `gorm:"not null;uniqueIndex:idx_club_user;index" json:"user_id"`
	JoinedAt time.Time `gorm:"autoCreateTime" json:"joined_at"`

	Club Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (ClubMembership) TableName() string {
	return "club_memberships"
}

// ============================================================
// Event Tables
// ============================================================

// Event represents events table
type Event struct {
	ID                       string           `gorm:"primaryKey;size:36" json:"id"`
	Title                    string           `gorm:"size:200;not null" json:"title"`
	Description              *string          `gorm:"type:text" json:"description"`
	EventType                domain.EventType `gorm:"size:20;default:'event'" json:"event_type"`
	StartDate                time.Time        `gorm:"type:date;not null;index" json:"start_date"`
	EndDate                  time.Time        `gorm:"type:date;not null" json:"end_date"`
	StartTime                string           `gorm:"size:10;not null" json:"event_start_time"`
	EndTime                  string           `gorm:"size:10;not null" json:"event_end_time"`
	VenueName                *string          `gorm:"size:200" json:"venue_name"`
	RegistrationLink         *string          `gorm:"size:255" json:"registration_link"`
	MaxParticipants          *int             `json:"max_participants"`
	MinimumAttendanceMinutes int              `gorm:"not null;default:45" json:"minimum_attendance_minutes"`
	IsOdEligible             bool             `gorm:"default:false" json:"is_od_eligible"`
	QrEnabled                bool             `gorm:"default:true" json:"qr_enabled"`
	IsPublished              bool             `gorm:"default:false;index" json:"is_published"`
	OrganizerID              *uint            `gorm:"index" json:"organizer_id"`
	OrganizerName            string           `gorm:"size:120;not null" json:"organizer_name"`
	BannerURL                *string          `gorm:"size:255" json:"banner_url"`
	CreatedAt                time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt                gorm.DeletedAt   `gorm:"index" json:"-"`

	Organizer *User `gorm:"foreignKey:OrganizerID" json:"organizer,omitempty"`
}

func (Event) TableName() string {
	return "events"
}

// StartsAt combines start date and start time into the event's start instant
func (e *Event) StartsAt() time.Time {
	return combineDateTime(e.StartDate, e.StartTime)
}

// EndsAt combines end date and end time into the event's end instant
func (e *Event) EndsAt() time.Time {
	return combineDateTime(e.EndDate, e.EndTime)
}

// WindowStatus reports where now falls relative to the event's active window.
// Scans outside the window must not create or mutate attendance records.
func (e *Event) WindowStatus(now time.Time) domain.WindowStatus {
	if now.Before(e.StartsAt()) {
		return domain.WindowNotStarted
	}
	if now.After(e.EndsAt()) {
		return domain.WindowEnded
	}
	return domain.WindowOk
}

// combineDateTime merges a date with an "HH:MM" or "HH:MM:SS" time-of-day
// in the server's location
func combineDateTime(date time.Time, hhmm string) time.Time {
	layout := "15:04"
	if len(hhmm) == 8 {
		layout = "15:04:05"
	}
	t, err := time.ParseInLocation(layout, hhmm, time.Local)
	if err != nil {
		// midnight fallback for unparseable time columns
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.Local)
}

// EventRegistration represents event_registrations table
type EventRegistration struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	EventID      string    `gorm:"size:36;not null;uniqueIndex:idx_reg_event_user" json:"event_id"`
	UserID       uint      `gorm:"not null;uniqueIndex:idx_reg_event_user;index" json:"user_id"`
	Status       string    `gorm:"size:20;default:'registered'" json:"status"`
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registered_at"`

	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

func (EventRegistration) TableName() string {
	return "event_registrations"
}

// EventBookmark represents event_bookmarks table
type EventBookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   string    `gorm:"size:36;not null;uniqueIndex:idx_bm_event_user" json:"event_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_bm_event_user;index" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

func (EventBookmark) TableName() string {
	return "event_bookmarks"
}

// ============================================================
// Attendance Tables
// ============================================================

// EventAttendance represents event_attendance table.
// One row per (event, user) pair; the unique index serializes racing
// entry scans so only one writer wins each transition.
type EventAttendance struct {
	ID           string                  `gorm:"primaryKey;size:36" json:"id"`
	EventID      string                  `gorm:"size:36;not null;uniqueIndex:idx_att_event_user" json:"event_id"`
	UserID       uint                    `gorm:"not null;uniqueIndex:idx_att_event_user;index" json:"user_id"`
	EntryTime    *time.Time              `json:"entry_time"`
	ExitTime     *time.Time              `json:"exit_time"`
	QrScanCount  int                     `gorm:"default:0" json:"qr_scan_count"`
	TotalMinutes *int                    `json:"total_minutes"`
	Status       domain.AttendanceStatus `gorm:"size:15;default:'pending';index" json:"attendance_status"`
	CreatedAt    time.Time               `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time               `gorm:"autoUpdateTime" json:"updated_at"`

	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`
}

func (EventAttendance) TableName() string {
	return "event_attendance"
}

// State derives the scan-lifecycle state from the stored record
func (a *EventAttendance) State() domain.AttendanceState {
	if a == nil || a.EntryTime == nil {
		return domain.StateAbsent
	}
	if a.ExitTime == nil {
		return domain.StateEntered
	}
	return domain.StateCompleted
}

// OdRequest represents od_list table (On-Duty eligibility requests)
type OdRequest struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	EventID         string          `gorm:"size:36;not null;index" json:"event_id"`
	AttendanceID    *string         `gorm:"size:36;index" json:"attendance_id"`
	ClassDate       time.Time       `gorm:"type:date;not null" json:"class_date"`
	Status          domain.OdStatus `gorm:"size:15;default:'pending';index" json:"status"`
	RejectionReason *string         `gorm:"size:255" json:"rejection_reason"`
	FacultyID       *uint           `json:"faculty_id"`
	ApprovedAt      *time.Time      `json:"approved_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	Event      Event            `gorm:"foreignKey:EventID" json:"event,omitempty"`
	Attendance *EventAttendance `gorm:"foreignKey:AttendanceID" json:"attendance,omitempty"`
	User       User             `gorm:"foreignKey:UserID" json:"-"`
	Faculty    *User            `gorm:"foreignKey:FacultyID" json:"-"`
}

func (OdRequest) TableName() string {
	return "od_list"
}
