// Package domain contains the core entities and value objects for pdfship.
//
// This package represents the innermost layer of the architecture. It has
// no dependencies on infrastructure concerns (PDF parsing, file system,
// logging) and contains only pure business rules.
//
// # Entities
//
//   - [SourceItem]: One loaded document contributed to a merge session
//   - [MergeRequest]: An immutable snapshot taken at the moment a merge is committed
//   - [SessionState]: The persistable form of a session for crash recovery
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants
//   - Testable without mocks or external systems
package domain
