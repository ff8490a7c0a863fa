package services

import (
	"context"
	"strings"
	"time"

	"github.com/Jeffstark223/nursa-ehub-2026/internal/adapters/persistence/repositories"
)

// exportHeader is the fixed CSV column order expected by the counting
// committee's spreadsheet template.
const exportHeader = "President,VicePresident,Secretary,Timestamp,ReferenceCode"

// ExportService renders the ballot ledger as CSV
type ExportService struct {
	ballotRepo repositories.BallotRepository
}

// NewExportService creates a new export service
func NewExportService(ballotRepo repositories.BallotRepository) *ExportService {
	return &ExportService{ballotRepo: ballotRepo}
}

// Export returns the export filename, the CSV body and the ballot count.
// Every field is quoted; the template requires it even for plain values,
// which rules out encoding/csv's minimal quoting.
func (s *ExportService) Export(ctx context.Context) (filename string, body []byte, total int, err error) {
	filename = "nursa-votes-" + time.Now().Format("2006-01-02") + ".csv"

	ballots, err := s.ballotRepo.ListAll(ctx)
	if err != nil {
		return "", nil, 0, err
	}

	if len(ballots) == 0 {
		return filename, []byte("No votes recorded.\n"), 0, nil
	}

	var sb strings.Builder
	sb.WriteString(exportHeader)
	sb.WriteByte('\n')

	for _, b := range ballots {
		sb.WriteString(quoteField(b.President))
		sb.WriteByte(',')
		sb.WriteString(quoteField(b.VicePresident))
		sb.WriteByte(',')
		sb.WriteString(quoteField(b.Secretary))
		sb.WriteByte(',')
		sb.WriteString(quoteField(b.CastAt.Format(time.RFC3339)))
		sb.WriteByte(',')
		sb.WriteString(quoteField(b.RefCode))
		sb.WriteByte('\n')
	}

	return filename, []byte(sb.String()), len(ballots), nil
}

// quoteField wraps a value in double quotes, doubling embedded quotes per
// CSV rules.
func quoteField(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
