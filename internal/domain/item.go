package domain

// Location is an opaque reference sufficient to re-read a document's original
// bytes on demand. The engine never inspects its internal shape; only the
// storage adapter that minted a Location understands it.
type Location string

// SourceItem is one loaded document contributed to a merge session.
type SourceItem struct {
	// ID is the unique identifier, stable for the item's lifetime.
	// It is the sole key for list operations, never position.
	ID string `json:"id"`

	// DisplayName is a human-readable label. Not unique, never a key.
	DisplayName string `json:"display_name"`

	// Location references the original bytes for re-reading at assembly time.
	Location Location `json:"location"`

	// PageCount is the number of pages found at load time. It is computed
	// exactly once and never recomputed implicitly; re-validation requires
	// reloading the item.
	PageCount int `json:"page_count"`
}

// MergeRequest is an immutable snapshot produced at the moment a merge is
// committed. The session may keep changing concurrently; the in-flight
// request is unaffected.
type MergeRequest struct {
	Items      []SourceItem
	OutputName string
	TotalPages int
}

// NewMergeRequest snapshots the given items and output name. The item slice
// is copied so later session mutations cannot leak into the request.
func NewMergeRequest(items []SourceItem, outputName string) MergeRequest {
	snap := make([]SourceItem, len(items))
	copy(snap, items)
	return MergeRequest{
		Items:      snap,
		OutputName: outputName,
		TotalPages: TotalPages(snap),
	}
}

// SessionState is the persistable form of a session, used for crash recovery
// by a SessionRepository. Ids and page counts are preserved as persisted.
type SessionState struct {
	Items          []SourceItem `json:"items"`
	OutputName     string       `json:"output_name,omitempty"`
	NameOverridden bool         `json:"name_overridden,omitempty"`
}

// Empty reports whether the state holds no items and no name override.
func (s SessionState) Empty() bool {
	return len(s.Items) == 0 && !s.NameOverridden
}

// TotalPages sums the page counts of the given items.
func TotalPages(items []SourceItem) int {
	var total int
	for _, it := range items {
		total += it.PageCount
	}
	return total
}
