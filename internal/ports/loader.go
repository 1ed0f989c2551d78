package ports

import "io"

// DocumentLoader parses a byte buffer as a page-oriented document.
// There are no partial loads: either every page is accounted for or the
// whole call fails with a domain.UnreadableDocumentError.
type DocumentLoader interface {
	// Load parses data and returns a handle with the exact page count.
	Load(data []byte) (Document, error)
}

// Document is a parsed in-memory document handle usable for page copying.
// The handle stays valid independently of the buffer it was built from;
// callers keep the handle (not the original buffer) alive for later reads.
type Document interface {
	// PageCount returns the number of top-level pages, indexed from 0.
	PageCount() int

	// NewReader returns a fresh reader over the document's bytes.
	NewReader() io.ReadSeeker
}
