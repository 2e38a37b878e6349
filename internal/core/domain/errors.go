package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalServer     = errors.New("internal server error")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Auth errors
var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("user already exists")
	ErrRegistrationNumberInUse = errors.New("registration number already registered")
	ErrUserInactive            = errors.New("user account is inactive")
	ErrTokenRevoked            = errors.New("token revoked")
	ErrEmailAlreadyExists      = errors.New("email already exists")
	ErrOldPasswordWrong        = errors.New("old password is incorrect")
	ErrCannotChangeOwnRole     = errors.New("cannot change your own role")
	ErrCannotDeactivateSelf    = errors.New("cannot deactivate your own account")
)

// Scan errors — the attendance scan pipeline rejects a scan with exactly
// one of these before or during a state transition
var (
	ErrTokenMalformed  = errors.New("invalid QR code format")
	ErrScanExpired     = errors.New("QR code has expired")
	ErrEventNotFound   = errors.New("event not found")
	ErrScanDisabled    = errors.New("QR attendance is not enabled for this event")
	ErrEventNotStarted = errors.New("event has not started yet")
	ErrEventEnded      = errors.New("event has already ended")
	ErrAlreadyRecorded = errors.New("attendance already recorded for this event")
)

// Event errors
var (
	ErrEventNotPublished  = errors.New("event is not published")
	ErrEventFull          = errors.New("event has reached maximum participants")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrNotRegistered      = errors.New("not registered for this event")
	ErrNotEventOrganizer  = errors.New("not the organizer of this event")
	ErrInvalidEventWindow = errors.New("event end must not be before event start")
	ErrMinimumAttendance  = errors.New("minimum attendance must be at least 15 minutes")
)

// Club errors
var (
	ErrClubNotFound  = errors.New("club not found")
	ErrClubInactive  = errors.New("club is not active")
	ErrAlreadyMember = errors.New("already a member of this club")
	ErrNotMember     = errors.New("not a member of this club")
)

// OD errors
var (
	ErrOdRequestNotFound = errors.New("od request not found")
	ErrOdNotPending      = errors.New("od request is not pending")
)
