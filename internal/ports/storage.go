package ports

import (
	"context"

	"github.com/pdfship/pdfship/internal/domain"
)

// Storage is the persistent storage adapter the engine reads sources from
// and writes the merged output to. Implementations are responsible for any
// platform-specific reference normalization before handing out a Location;
// the engine treats Locations as opaque tokens.
type Storage interface {
	// ReadAll returns the full byte content behind the given location.
	ReadAll(ctx context.Context, loc domain.Location) ([]byte, error)

	// WriteAll persists data under the suggested name and returns a location
	// for it. The write must be atomic from the caller's perspective: either
	// the full content is readable under the returned location or nothing
	// was written.
	WriteAll(ctx context.Context, data []byte, suggestedName string) (domain.Location, error)
}
