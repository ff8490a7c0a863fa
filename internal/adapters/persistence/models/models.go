package models

import (
	"time"

	"gorm.io/gorm"
)

// Contested offices on the 2026 ballot
const (
	OfficePresident     = "president"
	OfficeVicePresident = "vicepresident"
	OfficeSecretary     = "secretary"
)

// Student represents the students table. A row is either unregistered
// (no password hash) or fully registered; partial credential states never
// persist across requests.
type Student struct {
	ID                 string    `gorm:"primaryKey;size:20" json:"student_id"`
	DisplayName        string    `gorm:"size:100;not null" json:"display_name"`
	AccessID           string    `gorm:"uniqueIndex;size:30;not null" json:"-"`
	PasswordHash       string    `gorm:"size:128" json:"-"`
	PasswordSalt       string    `gorm:"size:32" json:"-"`
	SecurityQuestion   string    `gorm:"size:255" json:"-"`
	SecurityAnswerHash string    `gorm:"size:128" json:"-"`
	SecurityAnswerSalt string    `gorm:"size:32" json:"-"`
	RecoveryCodeHash   string    `gorm:"size:128" json:"-"`
	RecoveryCodeSalt   string    `gorm:"size:32" json:"-"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// Registered reports whether the record holds a full credential set.
func (s *Student) Registered() bool {
	return s.PasswordHash != "" && s.PasswordSalt != ""
}

// StudentResponse DTO for admin listings; credential material never leaves
// the persistence layer.
type StudentResponse struct {
	StudentID    string    `json:"student_id"`
	DisplayName  string    `json:"display_name"`
	RegisteredAt time.Time `json:"registered_at"`
}

func (s *Student) ToResponse() *StudentResponse {
	return &StudentResponse{
		StudentID:    s.ID,
		DisplayName:  s.DisplayName,
		RegisteredAt: s.CreatedAt,
	}
}

// EligibleStudent represents the read-only enrollment roster consulted at
// registration when open registration is disabled.
type EligibleStudent struct {
	ID       string `gorm:"primaryKey;size:20" json:"student_id"`
	FullName string `gorm:"size:100" json:"full_name"`
}

func (EligibleStudent) TableName() string {
	return "eligible_students"
}

// Ballot represents the ballots table. Rows never reference the voter's
// identity; the link exists only through the voted_fingerprints set at
// cast time. Immutable once recorded.
type Ballot struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	President     string    `gorm:"size:100;not null" json:"president"`
	VicePresident string    `gorm:"size:100;not null" json:"vicepresident"`
	Secretary     string    `gorm:"size:100;not null" json:"secretary"`
	CastAt        time.Time `gorm:"not null" json:"cast_at"`
	RefCode       string    `gorm:"size:20;not null" json:"ref_code"`
}

func (Ballot) TableName() string {
	return "ballots"
}

// VotedFingerprint marks a voter fingerprint as used. The primary key is
// the atomic backstop for the one-ballot-per-voter invariant.
type VotedFingerprint struct {
	Fingerprint string    `gorm:"primaryKey;size:64" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (VotedFingerprint) TableName() string {
	return "voted_fingerprints"
}

// VotingWindow holds the single persisted voting period row. Casting is
// permitted iff StartsAt <= now <= EndsAt.
type VotingWindow struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	StartsAt  time.Time `gorm:"not null" json:"starts_at"`
	EndsAt    time.Time `gorm:"not null" json:"ends_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (VotingWindow) TableName() string {
	return "voting_windows"
}

// WindowRowID is the id of the single voting window row.
const WindowRowID uint = 1

// Candidate represents the candidates table, seeded at boot. The result
// projection reports a zero count for candidates without ballots.
type Candidate struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Office string `gorm:"size:20;index;not null" json:"office"`
	Name   string `gorm:"size:100;not null" json:"name"`
}

func (Candidate) TableName() string {
	return "candidates"
}

// AutoMigrate creates or updates all election tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Student{},
		&EligibleStudent{},
		&Ballot{},
		&VotedFingerprint{},
		&VotingWindow{},
		&Candidate{},
	)
}
