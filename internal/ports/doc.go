// Package ports defines the interfaces (ports) that connect the merge engine
// to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the engine needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [Storage]: Reads source bytes and persists the merged output
//   - [DocumentLoader]: Parses bytes into a page-counted [Document] handle
//   - [Assembler]: Produces the merged output bytes for a request
//   - [Sharer]: Hands a persisted output off to the platform (pure sink)
//   - [SessionRepository]: Persists and restores session state
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app, internal/session) depends only on
// these interfaces. Infrastructure adapters (internal/adapters, internal/pdfops)
// implement them with concrete implementations (file system, pdfcpu, zerolog).
//
// This separation enables:
//   - Testing engine logic with mock implementations
//   - Swapping infrastructure without changing business logic
//   - Clear boundaries and dependency direction
package ports
