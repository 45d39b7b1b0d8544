// Package importer loads reimbursement payments from uploaded CSV
// exports and records them against a single expense.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/importer/ledgercsv"
	"github.com/openclaims/remit/internal/reimbursement"
)

// Parser turns an uploaded file into payment rows.
type Parser interface {
	Parse(r io.Reader) ([]ledgercsv.Row, error)
}

// Recorder records a single payment. Satisfied by *reimbursement.Service.
type Recorder interface {
	Record(ctx context.Context, ownerID string, params reimbursement.RecordParams) (*reimbursement.RecordResult, error)
}

// RejectedRow is a parsed row the engine refused, with the reason.
// Overdraft rows land here rather than failing the whole import.
type RejectedRow struct {
	Line   int    `json:"line"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// Report summarizes one import run.
type Report struct {
	Recorded []*reimbursement.Payment `json:"recorded"`
	Rejected []RejectedRow            `json:"rejected"`
}

type Service struct {
	parser   Parser
	recorder Recorder
}

func NewService(recorder Recorder) *Service {
	return &Service{
		parser:   ledgercsv.NewParser(),
		recorder: recorder,
	}
}

// Import parses r and records each row against expenseID in file order.
// Rows rejected as overdrafts are reported and skipped; any other
// recording failure aborts the run so a flaky store does not silently
// drop the tail of the file.
func (s *Service) Import(ctx context.Context, ownerID string, expenseID uuid.UUID, r io.Reader) (*Report, error) {
	rows, err := s.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing upload: %w", err)
	}

	report := &Report{
		Recorded: []*reimbursement.Payment{},
		Rejected: []RejectedRow{},
	}

	for _, row := range rows {
		at := row.ReimbursedAt

		result, err := s.recorder.Record(ctx, ownerID, reimbursement.RecordParams{
			ExpenseID:    expenseID,
			Amount:       row.Amount,
			Method:       row.Method,
			Notes:        row.Notes,
			ReimbursedAt: &at,
		})
		if err != nil {
			var overdraft *reimbursement.OverdraftError
			if errors.As(err, &overdraft) {
				report.Rejected = append(report.Rejected, RejectedRow{
					Line:   row.Line,
					Amount: row.Amount,
					Reason: overdraft.Error(),
				})

				continue
			}

			return nil, fmt.Errorf("recording line %d: %w", row.Line, err)
		}

		report.Recorded = append(report.Recorded, result.Payment)
	}

	return report, nil
}
