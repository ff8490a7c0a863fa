package services

import (
	"context"
	"sort"
	"sync"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes backed by maps. They reproduce the two gorm
// behaviors the services rely on: ErrRecordNotFound on misses and
// ErrDuplicatedKey on primary-key collisions. Each carries an injectable
// forced error so storage failures can be simulated per call.

type fakeStudentRepo struct {
	mu       sync.Mutex
	students map[string]*models.Student
	err      error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[string]*models.Student)}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.students[student.ID]; ok {
		return gorm.ErrDuplicatedKey
	}
	for _, s := range r.students {
		if s.AccessID == student.AccessID {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *student
	r.students[student.ID] = &copied
	return nil
}

func (r *fakeStudentRepo) GetByID(_ context.Context, id string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.students[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeStudentRepo) GetByAccessID(_ context.Context, accessID string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.students {
		if s.AccessID == accessID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.students[id]
	return ok, nil
}

func (r *fakeStudentRepo) UpdatePassword(_ context.Context, id, hash, salt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	s, ok := r.students[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.PasswordHash = hash
	s.PasswordSalt = salt
	return nil
}

func (r *fakeStudentRepo) List(_ context.Context, offset, limit int) ([]*models.Student, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	ids := make([]string, 0, len(r.students))
	for id := range r.students {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	total := int64(len(ids))
	if offset >= len(ids) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	out := make([]*models.Student, 0, end-offset)
	for _, id := range ids[offset:end] {
		copied := *r.students[id]
		out = append(out, &copied)
	}
	return out, total, nil
}

func (r *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.students)), nil
}

type fakeEligibleRepo struct {
	roster map[string]string // id -> full name
	err    error
}

func newFakeEligibleRepo(roster map[string]string) *fakeEligibleRepo {
	if roster == nil {
		roster = make(map[string]string)
	}
	return &fakeEligibleRepo{roster: roster}
}

func (r *fakeEligibleRepo) GetByID(_ context.Context, id string) (*models.EligibleStudent, error) {
	if r.err != nil {
		return nil, r.err
	}
	name, ok := r.roster[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.EligibleStudent{ID: id, FullName: name}, nil
}

func (r *fakeEligibleRepo) ExistsByID(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.roster[id]
	return ok, nil
}

func (r *fakeEligibleRepo) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.roster)), nil
}

type fakeBallotRepo struct {
	mu           sync.Mutex
	ballots      []*models.Ballot
	fingerprints map[string]bool
	err          error
}

func newFakeBallotRepo() *fakeBallotRepo {
	return &fakeBallotRepo{fingerprints: make(map[string]bool)}
}

func (r *fakeBallotRepo) CreateWithFingerprint(_ context.Context, ballot *models.Ballot, fingerprint string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if r.fingerprints[fingerprint] {
		return gorm.ErrDuplicatedKey
	}
	r.fingerprints[fingerprint] = true
	copied := *ballot
	r.ballots = append(r.ballots, &copied)
	return nil
}

func (r *fakeBallotRepo) HasVoted(_ context.Context, fingerprint string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	return r.fingerprints[fingerprint], nil
}

func (r *fakeBallotRepo) ListAll(_ context.Context) ([]*models.Ballot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*models.Ballot, 0, len(r.ballots))
	for _, b := range r.ballots {
		copied := *b
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeBallotRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.ballots)), nil
}

func (r *fakeBallotRepo) ResetAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.ballots = nil
	r.fingerprints = make(map[string]bool)
	return nil
}

type fakeWindowRepo struct {
	mu     sync.Mutex
	window models.VotingWindow
	err    error
}

func newFakeWindowRepo(window models.VotingWindow) *fakeWindowRepo {
	return &fakeWindowRepo{window: window}
}

func (r *fakeWindowRepo) Get(_ context.Context) (*models.VotingWindow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	copied := r.window
	return &copied, nil
}

func (r *fakeWindowRepo) Save(_ context.Context, window *models.VotingWindow) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.window = *window
	return nil
}

type fakeCandidateRepo struct {
	candidates []*models.Candidate
	err        error
}

func newFakeCandidateRepo(candidates ...*models.Candidate) *fakeCandidateRepo {
	return &fakeCandidateRepo{candidates: candidates}
}

func (r *fakeCandidateRepo) ListAll(_ context.Context) ([]*models.Candidate, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.candidates, nil
}
