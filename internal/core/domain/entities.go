package domain

// Role represents user role in the system
type Role string

const (
	RoleStudent      Role = "student"
	RoleOrganization Role = "organization"
	RoleFaculty      Role = "faculty"
	RoleAdmin        Role = "admin"
)

// IsValid reports whether the role is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleOrganization, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// AttendanceStatus represents the verification status of an attendance record
type AttendanceStatus string

const (
	AttendancePending  AttendanceStatus = "pending"
	AttendanceVerified AttendanceStatus = "verified"
	AttendanceInvalid  AttendanceStatus = "invalid"
)

// AttendanceState is the scan-lifecycle state of a (event, user) pair.
// It is derived from the stored record, never persisted directly.
type AttendanceState int

const (
	// StateAbsent means no attendance record exists yet
	StateAbsent AttendanceState = iota
	// StateEntered means an entry scan was recorded but no exit scan
	StateEntered
	// StateCompleted means both entry and exit scans were recorded; terminal
	StateCompleted
)

func (s AttendanceState) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateEntered:
		return "entered"
	case StateCompleted:
		return "completed"
	}
	return "unknown"
}

// OdStatus represents the approval status of an On-Duty request
type OdStatus string

const (
	OdPending  OdStatus = "pending"
	OdApproved OdStatus = "approved"
	OdRejected OdStatus = "rejected"
)

// EventType represents the kind of event
type EventType string

const (
	EventTypeEvent     EventType = "event"
	EventTypeHackathon EventType = "hackathon"
)

// ClubCategory represents a club directory category
type ClubCategory string

const (
	ClubTechnical     ClubCategory = "technical"
	ClubCultural      ClubCategory = "cultural"
	ClubSports        ClubCategory = "sports"
	ClubSocialService ClubCategory = "social_service"
	ClubLiterary      ClubCategory = "literary"
	ClubPhotography   ClubCategory = "photography"
	ClubEsports       ClubCategory = "esports"
	ClubDebate        ClubCategory = "debate"
)

// ClubCategories lists all known club categories
var ClubCategories = []ClubCategory{
	ClubTechnical,
	ClubCultural,
	ClubSports,
	ClubSocialService,
	ClubLiterary,
	ClubPhotography,
	ClubEsports,
	ClubDebate,
}

// WindowStatus reports where "now" falls relative to an event's active window
type WindowStatus int

const (
	// WindowOk means the event is currently in progress
	WindowOk WindowStatus = iota
	// WindowNotStarted means the event has not begun yet
	WindowNotStarted
	// WindowEnded means the event is already over
	WindowEnded
)

func (w WindowStatus) String() string {
	switch w {
	case WindowOk:
		return "ok"
	case WindowNotStarted:
		return "not_started"
	case WindowEnded:
		return "ended"
	}
	return "unknown"
}

// ScanKind reports which transition a successful scan applied
type ScanKind string

const (
	ScanEntry ScanKind = "entry"
	ScanExit  ScanKind = "exit"
)
