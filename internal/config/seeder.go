package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedElectionData seeds the candidate roster, the default voting window
// and (optionally) the eligibility roster. Each seeder is idempotent and
// skips when data already exists.
func SeedElectionData(db *gorm.DB) error {
	log.Println("🌱 Running election seeders...")

	if err := seedCandidates(db); err != nil {
		return err
	}
	if err := seedVotingWindow(db); err != nil {
		return err
	}
	if err := seedEligibleStudents(db); err != nil {
		log.Printf("⚠️ Roster seeder skipped: %v", err)
	}

	log.Println("✅ Election seeding completed")
	return nil
}

// seedCandidates seeds the 2026 ballot
func seedCandidates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Candidate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	candidates := []models.Candidate{
		{Office: models.OfficePresident, Name: "Sarah Johnson"},
		{Office: models.OfficePresident, Name: "John Davis"},
		{Office: models.OfficeVicePresident, Name: "Michael Chen"},
		{Office: models.OfficeVicePresident, Name: "Lisa Williams"},
		{Office: models.OfficeSecretary, Name: "Emily Brown"},
		{Office: models.OfficeSecretary, Name: "Robert Garcia"},
	}

	if err := db.Create(&candidates).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d candidates", len(candidates))
	return nil
}

// seedVotingWindow seeds the default 2026 voting period when no window
// row exists yet. Admin mutations replace it from then on.
func seedVotingWindow(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.VotingWindow{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	window := models.VotingWindow{
		ID:       models.WindowRowID,
		StartsAt: time.Date(2026, 1, 6, 8, 0, 0, 0, time.Local),
		EndsAt:   time.Date(2026, 1, 10, 23, 59, 59, 0, time.Local),
	}

	if err := db.Create(&window).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded default voting window: %s → %s",
		window.StartsAt.Format(time.RFC3339),
		window.EndsAt.Format(time.RFC3339),
	)
	return nil
}

// seedEligibleStudents seeds the roster from ELIGIBLE_STUDENT_IDS
// (comma-separated). Development convenience only; production loads the
// roster out of band.
func seedEligibleStudents(db *gorm.DB) error {
	raw := os.Getenv("ELIGIBLE_STUDENT_IDS")
	if raw == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.EligibleStudent{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var entries []models.EligibleStudent
	for _, id := range strings.Split(raw, ",") {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		entries = append(entries, models.EligibleStudent{
			ID:       id,
			FullName: "Student " + id,
		})
	}
	if len(entries) == 0 {
		return nil
	}

	if err := db.Create(&entries).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d eligible students", len(entries))
	return nil
}
