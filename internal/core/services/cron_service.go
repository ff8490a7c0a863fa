package services

import (
	"context"
	"log"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CronService runs scheduled election housekeeping: a daily turnout
// report at 08:30 for the election committee's morning check-in.
type CronService struct {
	cron        *cron.Cron
	studentRepo repositories.StudentRepository
	ballotRepo  repositories.BallotRepository
}

// NewCronService creates a new cron service
func NewCronService(db *gorm.DB) *CronService {
	return &CronService{
		cron:        cron.New(),
		studentRepo: repositories.NewStudentRepository(db),
		ballotRepo:  repositories.NewBallotRepository(db),
	}
}

// Start schedules the jobs and starts the scheduler
func (s *CronService) Start() {
	if _, err := s.cron.AddFunc("30 8 * * *", s.reportTurnout); err != nil {
		log.Printf("⚠️ Failed to schedule turnout report: %v", err)
		return
	}

	s.cron.Start()
	log.Println("⏰ CronService started (daily turnout report at 08:30)")
}

// Stop stops the scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

func (s *CronService) reportTurnout() {
	ctx := context.Background()

	registered, err := s.studentRepo.Count(ctx)
	if err != nil {
		log.Printf("⚠️ Turnout report failed: %v", err)
		return
	}
	cast, err := s.ballotRepo.Count(ctx)
	if err != nil {
		log.Printf("⚠️ Turnout report failed: %v", err)
		return
	}

	pct := 0.0
	if registered > 0 {
		pct = float64(cast) / float64(registered) * 100
	}
	log.Printf("📊 Turnout report: %d registered, %d ballots cast (%.1f%%)", registered, cast, pct)
}
