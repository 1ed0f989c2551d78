package pdfops

import (
	"bytes"
	"errors"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/ports"
)

// Loader implements ports.DocumentLoader using pdfcpu.
type Loader struct {
	conf *model.Configuration
}

// NewLoader creates a loader with relaxed validation, matching what common
// PDF producers actually emit.
func NewLoader() *Loader {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Loader{conf: conf}
}

// Load parses data as a PDF and returns a handle carrying the exact page
// count. The whole call fails on any parse or validation error; there are
// no partial loads.
func (l *Loader) Load(data []byte) (ports.Document, error) {
	if len(data) == 0 {
		return nil, &domain.UnreadableDocumentError{Err: errors.New("empty input")}
	}
	n, err := api.PageCount(bytes.NewReader(data), l.conf)
	if err != nil {
		return nil, &domain.UnreadableDocumentError{Err: err}
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return &document{data: buf, pages: n}, nil
}

// document keeps the validated bytes alive so the handle outlives the
// buffer it was built from.
type document struct {
	data  []byte
	pages int
}

func (d *document) PageCount() int { return d.pages }

func (d *document) NewReader() io.ReadSeeker { return bytes.NewReader(d.data) }
