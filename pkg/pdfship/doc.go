// Package pdfship provides an embeddable PDF merge-session engine.
//
// An [Engine] owns one merge session: an ordered list of loaded source
// documents with derived totals and a default output name. Callers add
// documents (by path or raw bytes), reorder or remove them by id, and
// commit a merge; the engine validates the session against the configured
// page ceiling before any assembly I/O begins and writes the output
// atomically.
//
// # Usage
//
//	eng, err := pdfship.New(pdfship.Config{OutputDir: "out"})
//	if err != nil { ... }
//	added, failed := eng.Add(ctx,
//		pdfship.Input{Path: "a.pdf"},
//		pdfship.Input{Path: "b.pdf"},
//	)
//	loc, err := eng.Merge(ctx)
//
// All infrastructure is injectable via functional options (WithLogger,
// WithStorage, WithSharer, ...); defaults use the local file system and
// pdfcpu, with logging disabled.
package pdfship
