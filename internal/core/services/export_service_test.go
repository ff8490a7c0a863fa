package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportEmptyLedger(t *testing.T) {
	svc := NewExportService(newFakeBallotRepo())

	filename, body, total, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Equal(t, "No votes recorded.\n", string(body))
	assert.Regexp(t, `^nursa-votes-\d{4}-\d{2}-\d{2}\.csv$`, filename)
}

func TestExportCSVFormat(t *testing.T) {
	ballotRepo := newFakeBallotRepo()
	castAt := time.Date(2026, 1, 7, 14, 30, 0, 0, time.UTC)
	require.NoError(t, ballotRepo.CreateWithFingerprint(context.Background(), &models.Ballot{
		ID:            "b1",
		President:     "Sarah Johnson",
		VicePresident: "Michael Chen",
		Secretary:     "Emily Brown",
		CastAt:        castAt,
		RefCode:       "NM-2026-1234",
	}, "fp-1"))

	svc := NewExportService(ballotRepo)
	_, body, total, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	lines := strings.Split(strings.TrimRight(string(body), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "President,VicePresident,Secretary,Timestamp,ReferenceCode", lines[0])
	assert.Equal(t, `"Sarah Johnson","Michael Chen","Emily Brown","2026-01-07T14:30:00Z","NM-2026-1234"`, lines[1])
}

func TestExportQuotesEmbeddedQuotes(t *testing.T) {
	ballotRepo := newFakeBallotRepo()
	require.NoError(t, ballotRepo.CreateWithFingerprint(context.Background(), &models.Ballot{
		ID:            "b1",
		President:     `Sarah "SJ" Johnson`,
		VicePresident: "Michael Chen",
		Secretary:     "Emily Brown",
		CastAt:        time.Now(),
		RefCode:       "NM-2026-5678",
	}, "fp-1"))

	svc := NewExportService(ballotRepo)
	_, body, _, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(body), `"Sarah ""SJ"" Johnson"`)
}

func TestExportStorageError(t *testing.T) {
	ballotRepo := newFakeBallotRepo()
	ballotRepo.err = errors.New("connection lost")

	svc := NewExportService(ballotRepo)
	_, _, _, err := svc.Export(context.Background())
	assert.Error(t, err)
}
