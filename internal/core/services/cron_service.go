package services

import (
	"context"
	"log"
	"time"

	"campushub/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// staleEntryAge is how long an entry without an exit scan may sit before the
// hourly sweep marks it invalid. Generous enough to outlive any multi-day
// hackathon window.
const staleEntryAge = 48 * time.Hour

// CronService runs scheduled maintenance: purging dead refresh tokens and
// closing out attendance rows that never got an exit scan.
type CronService struct {
	cron              *cron.Cron
	refreshTokenRepo  repositories.RefreshTokenRepository
	attendanceService *AttendanceService
}

// NewCronService creates a new cron service
func NewCronService(
	refreshTokenRepo repositories.RefreshTokenRepository,
	attendanceService *AttendanceService,
) *CronService {
	return &CronService{
		cron:              cron.New(),
		refreshTokenRepo:  refreshTokenRepo,
		attendanceService: attendanceService,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() error {
	// daily at 03:00 — purge expired and revoked refresh tokens
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeRefreshTokens); err != nil {
		return err
	}

	// hourly — invalidate abandoned entry scans
	if _, err := s.cron.AddFunc("@hourly", s.sweepStaleAttendance); err != nil {
		return err
	}

	s.cron.Start()
	log.Println("✅ Cron service started (token purge daily, stale attendance sweep hourly)")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron service stopped")
}

func (s *CronService) purgeRefreshTokens() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := s.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		log.Printf("❌ Refresh token purge failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("✅ Purged %d expired refresh tokens", deleted)
	}
}

func (s *CronService) sweepStaleAttendance() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	swept, err := s.attendanceService.InvalidateStaleEntries(ctx, staleEntryAge)
	if err != nil {
		log.Printf("❌ Stale attendance sweep failed: %v", err)
		return
	}
	if swept > 0 {
		log.Printf("⚠️ Marked %d abandoned attendance entries invalid", swept)
	}
}
