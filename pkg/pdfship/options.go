package pdfship

import (
	"github.com/pdfship/pdfship/internal/app"
	"github.com/pdfship/pdfship/internal/domain"
	"github.com/pdfship/pdfship/internal/ports"
)

// Re-exported types so embedders can name them without reaching into
// internal packages.
type (
	// Logger is the structured logging interface the engine logs through.
	Logger = ports.Logger

	// Field is a structured log field.
	Field = ports.Field

	// Location is an opaque reference to stored bytes.
	Location = domain.Location

	// Violation is a named constraint-gate rule failure.
	Violation = domain.Violation

	// MergeState is the state of the session-level merge operation.
	MergeState = app.OpState
)

// Merge operation states.
const (
	MergeIdle      = app.OpIdle
	MergeRunning   = app.OpRunning
	MergeSucceeded = app.OpSucceeded
	MergeFailed    = app.OpFailed
)

// Field constructors, re-exported so callers build structured log fields
// the same way the engine does instead of hand-writing Field literals.
var (
	String   = ports.String
	Int      = ports.Int
	Bool     = ports.Bool
	Duration = ports.Duration
	Err      = ports.Err
	Any      = ports.Any
)

// Option configures optional behavior of an Engine.
type Option func(*options)

// options holds the optional configuration for an Engine.
type options struct {
	logger    ports.Logger
	loader    ports.DocumentLoader
	storage   ports.Storage
	assembler ports.Assembler
	sharer    ports.Sharer
	sessions  ports.SessionRepository
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDocumentLoader sets a custom document loader.
// If not provided, the pdfcpu loader is used.
func WithDocumentLoader(loader ports.DocumentLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithStorage sets a custom storage adapter.
// If not provided, a file-system adapter writing under Config.OutputDir is
// used. Custom adapters must understand the locations they are handed back.
func WithStorage(storage ports.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithAssembler sets a custom merge assembler.
// If not provided, the pdfcpu assembler is used.
func WithAssembler(assembler ports.Assembler) Option {
	return func(o *options) {
		o.assembler = assembler
	}
}

// WithSharer sets the platform hand-off for merged outputs.
// Overrides the Config.ShareDir default.
func WithSharer(sharer ports.Sharer) Option {
	return func(o *options) {
		o.sharer = sharer
	}
}

// WithSessionRepository enables session persistence (SaveSession/RestoreSession).
func WithSessionRepository(repo ports.SessionRepository) Option {
	return func(o *options) {
		o.sessions = repo
	}
}
