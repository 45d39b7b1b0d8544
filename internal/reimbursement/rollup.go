package reimbursement

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/openclaims/remit/internal/expense"
)

const (
	uncategorizedLabel = "Uncategorized"
	unknownLabel       = "Unknown"
)

// CategoryRollup is the reimbursement breakdown for one category
// bucket. CategoryID is nil for the uncategorized bucket.
type CategoryRollup struct {
	CategoryID      *uuid.UUID
	CategoryName    string
	TotalEligible   int64
	TotalReimbursed int64
	Remaining       int64
}

// Rollup is the overall reimbursement summary across all eligible
// expenses in a window, with per-category breakdowns.
type Rollup struct {
	TotalEligible   int64
	TotalReimbursed int64
	Remaining       int64
	ByCategory      []CategoryRollup
}

// OverallRollup aggregates the owner's non-archived expenses whose
// payment date falls inside the window (either bound may be nil) into
// overall and per-category eligible/reimbursed/remaining totals.
func (s *Service) OverallRollup(ctx context.Context, ownerID string, window expense.DateRange) (*Rollup, error) {
	expenses, err := s.expenses.ListEligible(ctx, ownerID, window)
	if err != nil {
		return nil, fmt.Errorf("listing eligible expenses: %w", err)
	}

	if len(expenses) == 0 {
		return &Rollup{ByCategory: []CategoryRollup{}}, nil
	}

	ids := make([]uuid.UUID, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}

	reimbursed, err := s.repo.SumByExpense(ctx, ownerID, ids)
	if err != nil {
		return nil, fmt.Errorf("summing payments per expense: %w", err)
	}

	names, err := s.categories.ResolveNames(ctx, categoryIDs(expenses))
	if err != nil {
		return nil, fmt.Errorf("resolving category names: %w", err)
	}

	return aggregate(expenses, reimbursed, names), nil
}

func categoryIDs(expenses []*expense.Expense) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})

	var ids []uuid.UUID

	for _, e := range expenses {
		if e.CategoryID == nil {
			continue
		}

		if _, ok := seen[*e.CategoryID]; ok {
			continue
		}

		seen[*e.CategoryID] = struct{}{}
		ids = append(ids, *e.CategoryID)
	}

	return ids
}

// aggregate folds expenses and their per-expense reimbursed sums into a
// rollup. It is a pure function of its inputs: expenses with no
// payments contribute zero reimbursed, expenses without a category land
// in the uncategorized bucket, and category ids with no resolved name
// are labeled Unknown. Buckets are sorted by display name, then id, so
// the output is stable for a given input.
func aggregate(expenses []*expense.Expense, reimbursed map[uuid.UUID]int64, names map[uuid.UUID]string) *Rollup {
	type bucket struct {
		id         *uuid.UUID
		eligible   int64
		reimbursed int64
	}

	buckets := make(map[uuid.UUID]*bucket)
	uncategorized := &bucket{}
	hasUncategorized := false

	rollup := &Rollup{}

	for _, e := range expenses {
		sum := reimbursed[e.ID]

		rollup.TotalEligible += e.Amount
		rollup.TotalReimbursed += sum

		b := uncategorized
		if e.CategoryID == nil {
			hasUncategorized = true
		} else {
			var ok bool
			if b, ok = buckets[*e.CategoryID]; !ok {
				id := *e.CategoryID
				b = &bucket{id: &id}
				buckets[id] = b
			}
		}

		b.eligible += e.Amount
		b.reimbursed += sum
	}

	rollup.Remaining = rollup.TotalEligible - rollup.TotalReimbursed

	byCategory := make([]CategoryRollup, 0, len(buckets)+1)

	for id, b := range buckets {
		name, ok := names[id]
		if !ok {
			name = unknownLabel
		}

		byCategory = append(byCategory, CategoryRollup{
			CategoryID:      b.id,
			CategoryName:    name,
			TotalEligible:   b.eligible,
			TotalReimbursed: b.reimbursed,
			Remaining:       b.eligible - b.reimbursed,
		})
	}

	if hasUncategorized {
		byCategory = append(byCategory, CategoryRollup{
			CategoryName:    uncategorizedLabel,
			TotalEligible:   uncategorized.eligible,
			TotalReimbursed: uncategorized.reimbursed,
			Remaining:       uncategorized.eligible - uncategorized.reimbursed,
		})
	}

	sort.Slice(byCategory, func(i, j int) bool {
		if byCategory[i].CategoryName != byCategory[j].CategoryName {
			return byCategory[i].CategoryName < byCategory[j].CategoryName
		}

		return categoryKey(byCategory[i].CategoryID) < categoryKey(byCategory[j].CategoryID)
	})

	rollup.ByCategory = byCategory

	return rollup
}

func categoryKey(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return id.String()
}
