package pdfship

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/pdfship/pdfship/internal/adapters/fs"
	logAdapter "github.com/pdfship/pdfship/internal/adapters/log"
	"github.com/pdfship/pdfship/internal/adapters/share"
	"github.com/pdfship/pdfship/internal/app"
	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/pdfops"
	"github.com/pdfship/pdfship/internal/ports"
	"github.com/pdfship/pdfship/internal/session"
)

// Input is one document handed to the engine by the input-acquisition
// layer: a display name plus either raw bytes or a location reference.
// When both are set, Data wins.
type Input struct {
	// DisplayName labels the item. Defaults to the base of Path.
	DisplayName string

	// Path is a storage location reference for the document bytes.
	Path string

	// Data carries the document bytes directly, for callers that have no
	// stable location to reference.
	Data []byte
}

// ItemView is the per-item projection handed to the presentation layer.
type ItemView struct {
	ID          string
	DisplayName string
	PageCount   int
}

// AddFailure reports one input of a batch that could not be added.
// Other inputs of the same batch are unaffected.
type AddFailure struct {
	DisplayName string
	Err         error
}

// Engine owns one merge session and the collaborators needed to commit it.
//
// Mutating calls (Add, Remove, Reorder, SetOutputName) must be serialized
// by the caller; reads and Merge may overlap with nothing else in flight.
type Engine struct {
	cfg      Config
	logger   ports.Logger
	loader   ports.DocumentLoader
	storage  ports.Storage
	sessions ports.SessionRepository
	session  *session.Session
	gate     session.Gate
	merger   *app.Merger
}

// New creates an engine with the given configuration.
func New(cfg Config, opts ...Option) (*Engine, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}
	loader := o.loader
	if loader == nil {
		loader = pdfops.NewLoader()
	}
	storage := o.storage
	if storage == nil {
		storage = fs.NewStorage(cfg.OutputDir, logger)
	}
	sharer := o.sharer
	if sharer == nil && cfg.ShareDir != "" {
		sharer = share.NewDirSharer(cfg.ShareDir, logger)
	}
	assembler := o.assembler
	if assembler == nil {
		assembler = pdfops.NewAssembler(loader, storage, logger)
	}

	sess := session.New()
	gate := session.NewGate(cfg.MaxTotalPages)

	return &Engine{
		cfg:      cfg,
		logger:   logger,
		loader:   loader,
		storage:  storage,
		sessions: o.sessions,
		session:  sess,
		gate:     gate,
		merger:   app.NewMerger(sess, gate, assembler, storage, sharer, logger),
	}, nil
}

// Add loads each input and appends the successfully loaded ones to the
// session, in input order. A load failure affects only that input; the
// returned failures identify which inputs were rejected and why.
func (e *Engine) Add(ctx context.Context, inputs ...Input) ([]ItemView, []AddFailure) {
	var batch []session.Loaded
	var failures []AddFailure

	for _, in := range inputs {
		name := in.DisplayName
		if name == "" && in.Path != "" {
			name = filepath.Base(in.Path)
		}

		loc, data, err := e.resolve(ctx, in)
		if err != nil {
			e.logger.Warn("input rejected", ports.String("name", name), ports.Err(err))
			failures = append(failures, AddFailure{DisplayName: name, Err: err})
			continue
		}

		doc, err := e.loader.Load(data)
		if err != nil {
			e.logger.Warn("input rejected", ports.String("name", name), ports.Err(err))
			failures = append(failures, AddFailure{DisplayName: name, Err: err})
			continue
		}

		batch = append(batch, session.Loaded{
			DisplayName: name,
			Location:    loc,
			PageCount:   doc.PageCount(),
		})
	}

	added := e.session.AddItems(batch)
	views := make([]ItemView, len(added))
	for i, it := range added {
		views[i] = ItemView{ID: it.ID, DisplayName: it.DisplayName, PageCount: it.PageCount}
		e.logger.Info("item added",
			ports.String("id", it.ID),
			ports.String("name", it.DisplayName),
			ports.Int("pages", it.PageCount),
		)
	}
	return views, failures
}

// resolve turns an input into a re-readable location plus its bytes.
func (e *Engine) resolve(ctx context.Context, in Input) (domain.Location, []byte, error) {
	if in.Data != nil {
		return fs.InlineLocation(in.Data), in.Data, nil
	}
	if in.Path == "" {
		return "", nil, errors.New("pdfship: input has neither data nor path")
	}
	loc := domain.Location(in.Path)
	data, err := e.storage.ReadAll(ctx, loc)
	if err != nil {
		return "", nil, err
	}
	return loc, data, nil
}

// Remove deletes the item with the given id.
// Returns a domain.NotFoundError when the id is absent.
func (e *Engine) Remove(id string) error {
	return e.session.RemoveItem(id)
}

// Reorder replaces the item order with the given permutation of ids.
func (e *Engine) Reorder(ids ...string) error {
	return e.session.Reorder(ids)
}

// SetOutputName overrides the derived output name. Empty restores the default.
func (e *Engine) SetOutputName(name string) {
	e.session.SetOutputName(name)
}

// OutputName returns the effective output name.
func (e *Engine) OutputName() string { return e.session.OutputName() }

// Items returns the current ordered item list for presentation.
func (e *Engine) Items() []ItemView {
	items := e.session.Items()
	views := make([]ItemView, len(items))
	for i, it := range items {
		views[i] = ItemView{ID: it.ID, DisplayName: it.DisplayName, PageCount: it.PageCount}
	}
	return views
}

// TotalPages returns the derived aggregate page count.
func (e *Engine) TotalPages() int { return e.session.TotalPages() }

// Violations returns the current validation state: every constraint the
// session would violate if merged now, or nil when a merge may proceed.
func (e *Engine) Violations() []Violation {
	return e.gate.Validate(e.session.Items())
}

// Merge validates the session and assembles, persists, and optionally
// shares the merged document, returning the output location. A second
// Merge while one is outstanding fails with domain.ErrMergeInProgress.
func (e *Engine) Merge(ctx context.Context) (Location, error) {
	return e.merger.Commit(ctx)
}

// MergeState returns the merge operation state for completion detection.
func (e *Engine) MergeState() MergeState { return e.merger.State() }

// SaveSession persists the session through the configured repository.
func (e *Engine) SaveSession(ctx context.Context) error {
	if e.sessions == nil {
		return errors.New("pdfship: no session repository configured")
	}
	return e.sessions.Save(ctx, e.session.State())
}

// RestoreSession replaces the session with the last persisted state.
// Ids and page counts are kept as persisted; sources are re-validated at
// assembly time. A missing state restores an empty session.
func (e *Engine) RestoreSession(ctx context.Context) error {
	if e.sessions == nil {
		return errors.New("pdfship: no session repository configured")
	}
	st, err := e.sessions.Load(ctx)
	if err != nil {
		return err
	}
	e.session.ReplaceState(st)
	return nil
}
