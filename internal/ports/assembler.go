package ports

import (
	"context"

	"github.com/pdfship/pdfship/internal/domain"
)

// Assembler produces one output document from the ordered items of a merge
// request, copying every page of every source in list order. The output's
// page count equals the request's TotalPages, or the assembly fails with a
// domain.AssemblyFailedError and no partial output.
type Assembler interface {
	Assemble(ctx context.Context, req domain.MergeRequest) ([]byte, error)
}
