package ports

import (
	"context"

	"github.com/pdfship/pdfship/internal/domain"
)

// Sharer hands a persisted output off to the platform (share sheet, export
// directory, upload). It is purely a sink; the engine consumes no result
// from it and a share failure never invalidates a completed merge.
type Sharer interface {
	Share(ctx context.Context, loc domain.Location) error
}
