package session

import (
	"errors"

	"github.com/pdfship/pdfship/internal/domain"
)

// DefaultMaxTotalPages is the default aggregate page ceiling (MAX_TOTAL_PAGES).
const DefaultMaxTotalPages = 150

// MinItems is the smallest item count that makes a merge meaningful.
const MinItems = 2

// Gate validates a proposed merge against the business rules before the
// assembler is invoked. Validation has no side effects and may be called
// repeatedly.
type Gate struct {
	maxTotalPages int
}

// NewGate creates a gate with the given page ceiling. A non-positive limit
// falls back to DefaultMaxTotalPages.
func NewGate(maxTotalPages int) Gate {
	if maxTotalPages <= 0 {
		maxTotalPages = DefaultMaxTotalPages
	}
	return Gate{maxTotalPages: maxTotalPages}
}

// MaxTotalPages returns the configured page ceiling.
func (g Gate) MaxTotalPages() int { return g.maxTotalPages }

// Validate checks both rules independently and returns every triggered
// violation, TooFewItems first. A nil result means the merge may proceed.
func (g Gate) Validate(items []domain.SourceItem) []domain.Violation {
	var vs []domain.Violation
	if len(items) < MinItems {
		vs = append(vs, &domain.TooFewItemsError{Count: len(items), Min: MinItems})
	}
	if total := domain.TotalPages(items); total > g.maxTotalPages {
		vs = append(vs, &domain.PageLimitExceededError{Actual: total, Limit: g.maxTotalPages})
	}
	return vs
}

// Check is Validate folded into a single error, for callers that only need
// to block the merge. Individual violations remain reachable via errors.As.
func (g Gate) Check(items []domain.SourceItem) error {
	vs := g.Validate(items)
	if len(vs) == 0 {
		return nil
	}
	errs := make([]error, len(vs))
	for i, v := range vs {
		errs[i] = v
	}
	return errors.Join(errs...)
}
