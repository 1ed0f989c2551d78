// Package app orchestrates the merge workflow: constraint gating, request
// snapshotting, page assembly, atomic persistence, and the optional share
// hand-off, under a single-flight guarantee.
package app

import (
	"context"
	"fmt"

	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/ports"
	"github.com/pdfship/pdfship/internal/session"
)

// Merger commits a session to one merged output document.
type Merger struct {
	session   *session.Session
	gate      session.Gate
	assembler ports.Assembler
	storage   ports.Storage
	sharer    ports.Sharer
	logger    ports.Logger
	op        opTracker
}

// NewMerger creates a merger with the given dependencies. sharer may be nil
// when no platform hand-off is wanted.
func NewMerger(
	sess *session.Session,
	gate session.Gate,
	assembler ports.Assembler,
	storage ports.Storage,
	sharer ports.Sharer,
	logger ports.Logger,
) *Merger {
	return &Merger{
		session:   sess,
		gate:      gate,
		assembler: assembler,
		storage:   storage,
		sharer:    sharer,
		logger:    logger,
	}
}

// State returns the current operation state for completion detection.
func (m *Merger) State() OpState { return m.op.State() }

// Commit validates the session, assembles the merged document, and persists
// it, returning the output location. Validation failures surface before any
// assembly I/O begins. A second Commit while one is outstanding fails with
// domain.ErrMergeInProgress.
func (m *Merger) Commit(ctx context.Context) (domain.Location, error) {
	if err := m.op.Begin(); err != nil {
		return "", err
	}

	loc, err := m.run(ctx)
	m.op.Finish(err)
	if err != nil {
		m.logger.Error("merge failed", ports.Err(err))
		return "", err
	}

	m.logger.Info("merge succeeded", ports.String("output", string(loc)))
	return loc, nil
}

func (m *Merger) run(ctx context.Context) (domain.Location, error) {
	// The gate runs against live session state; the snapshot below freezes
	// exactly what was validated.
	if err := m.gate.Check(m.session.Items()); err != nil {
		return "", err
	}

	req := m.session.Snapshot()
	m.logger.Info("merge committed",
		ports.Int("items", len(req.Items)),
		ports.Int("total_pages", req.TotalPages),
		ports.String("output_name", req.OutputName),
	)

	out, err := m.assembler.Assemble(ctx, req)
	if err != nil {
		return "", err
	}

	loc, err := m.storage.WriteAll(ctx, out, req.OutputName)
	if err != nil {
		return "", fmt.Errorf("persist output: %w", err)
	}

	if m.sharer != nil {
		// The share hand-off is a pure sink; a failure there does not
		// invalidate the completed merge.
		if err := m.sharer.Share(ctx, loc); err != nil {
			m.logger.Warn("share hand-off failed", ports.Err(err))
		}
	}

	return loc, nil
}
