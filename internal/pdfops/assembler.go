package pdfops

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/ports"
)

// Assembler implements ports.Assembler using pdfcpu's raw merge.
//
// Every item is re-read from its location and re-validated before the merge
// pass, so a per-item failure is attributed to the offending item before
// any output is produced.
type Assembler struct {
	loader  ports.DocumentLoader
	storage ports.Storage
	logger  ports.Logger
	conf    *model.Configuration
}

// NewAssembler creates an assembler reading sources through storage and
// validating them through loader.
func NewAssembler(loader ports.DocumentLoader, storage ports.Storage, logger ports.Logger) *Assembler {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Assembler{
		loader:  loader,
		storage: storage,
		logger:  logger,
		conf:    conf,
	}
}

// Assemble copies every page of every item, in list order, into one new
// document and returns its serialized bytes. Any per-item load failure
// aborts the whole assembly with a domain.AssemblyFailedError identifying
// the item; no partial output is returned on failure.
func (a *Assembler) Assemble(ctx context.Context, req domain.MergeRequest) ([]byte, error) {
	if len(req.Items) == 0 {
		return nil, &domain.AssemblyFailedError{Err: errors.New("no items to assemble")}
	}

	readers := make([]io.ReadSeeker, 0, len(req.Items))
	for _, it := range req.Items {
		if err := ctx.Err(); err != nil {
			return nil, &domain.AssemblyFailedError{ItemID: it.ID, DisplayName: it.DisplayName, Err: err}
		}

		data, err := a.storage.ReadAll(ctx, it.Location)
		if err != nil {
			return nil, &domain.AssemblyFailedError{ItemID: it.ID, DisplayName: it.DisplayName, Err: err}
		}

		doc, err := a.loader.Load(data)
		if err != nil {
			return nil, &domain.AssemblyFailedError{ItemID: it.ID, DisplayName: it.DisplayName, Err: err}
		}

		// The page count was fixed at load time. If the source changed
		// underneath us the output total would no longer match the request.
		if doc.PageCount() != it.PageCount {
			return nil, &domain.AssemblyFailedError{
				ItemID:      it.ID,
				DisplayName: it.DisplayName,
				Err:         fmt.Errorf("page count changed since load: have %d, want %d", doc.PageCount(), it.PageCount),
			}
		}

		readers = append(readers, doc.NewReader())
		a.logger.Debug("item validated for assembly",
			ports.String("id", it.ID),
			ports.String("name", it.DisplayName),
			ports.Int("pages", it.PageCount),
		)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, a.conf); err != nil {
		return nil, &domain.AssemblyFailedError{Err: err}
	}

	// The output's total page count must equal the sum over all items.
	got, err := api.PageCount(bytes.NewReader(out.Bytes()), a.conf)
	if err != nil {
		return nil, &domain.AssemblyFailedError{Err: fmt.Errorf("verify output: %w", err)}
	}
	if got != req.TotalPages {
		return nil, &domain.AssemblyFailedError{
			Err: fmt.Errorf("output page count mismatch: have %d, want %d", got, req.TotalPages),
		}
	}

	a.logger.Info("assembly complete",
		ports.Int("items", len(req.Items)),
		ports.Int("pages", got),
		ports.Int("bytes", out.Len()),
	)
	return out.Bytes(), nil
}
