// Package session holds the ordered working set for one merge operation and
// the constraint gate that validates it before assembly.
package session

import (
	"github.com/google/uuid"

	"github.com/pdfship/pdfship/internal/domain"
)

// Loaded is one successfully loaded document about to join a session.
// Ids are assigned by the session, not the caller.
type Loaded struct {
	DisplayName string
	Location    domain.Location
	PageCount   int
}

// Session is the working set for one merge operation: an ordered list of
// source items plus the chosen output name.
//
// Mutating operations must not be invoked concurrently on the same Session;
// the caller serializes them (e.g. one UI action in flight at a time).
// Each operation is atomic from the caller's view.
type Session struct {
	items      []domain.SourceItem
	outputName string
	overridden bool
}

// New creates an empty session.
func New() *Session {
	return &Session{}
}

// Restore rebuilds a session from persisted state. Ids and page counts are
// kept exactly as persisted; sources are re-validated at assembly time, not
// here.
func Restore(st domain.SessionState) *Session {
	s := New()
	s.ReplaceState(st)
	return s
}

// ReplaceState swaps the session content for the given persisted state, in
// place, so collaborators holding the session keep observing it.
func (s *Session) ReplaceState(st domain.SessionState) {
	items := make([]domain.SourceItem, len(st.Items))
	copy(items, st.Items)
	s.items = items
	s.outputName = st.OutputName
	s.overridden = st.NameOverridden
}

// State returns the persistable form of the session.
func (s *Session) State() domain.SessionState {
	items := make([]domain.SourceItem, len(s.items))
	copy(items, s.items)
	return domain.SessionState{
		Items:          items,
		OutputName:     s.outputName,
		NameOverridden: s.overridden,
	}
}

// AddItems appends the batch to the end of the item list, preserving the
// batch's relative order. Every item gets a freshly generated id distinct
// from every id ever used in this session, even for items added within the
// same instant.
func (s *Session) AddItems(batch []Loaded) []domain.SourceItem {
	added := make([]domain.SourceItem, 0, len(batch))
	for _, ld := range batch {
		it := domain.SourceItem{
			ID:          uuid.NewString(),
			DisplayName: ld.DisplayName,
			Location:    ld.Location,
			PageCount:   ld.PageCount,
		}
		s.items = append(s.items, it)
		added = append(added, it)
	}
	return added
}

// RemoveItem deletes the entry with the given id. Returns a
// domain.NotFoundError when the id is absent; all other items keep their
// relative order.
func (s *Session) RemoveItem(id string) error {
	for i, it := range s.items {
		if it.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return &domain.NotFoundError{ID: id}
}

// Reorder replaces the item order with the given permutation of the current
// id set. Fails with a domain.InvalidPermutationError when the argument has
// missing, duplicate, or unknown ids; the session is unchanged on failure.
func (s *Session) Reorder(ids []string) error {
	byID := make(map[string]domain.SourceItem, len(s.items))
	for _, it := range s.items {
		byID[it.ID] = it
	}

	var perr domain.InvalidPermutationError
	seen := make(map[string]bool, len(ids))
	next := make([]domain.SourceItem, 0, len(s.items))
	for _, id := range ids {
		if seen[id] {
			perr.Duplicate = append(perr.Duplicate, id)
			continue
		}
		seen[id] = true
		it, ok := byID[id]
		if !ok {
			perr.Unknown = append(perr.Unknown, id)
			continue
		}
		next = append(next, it)
	}
	for _, it := range s.items {
		if !seen[it.ID] {
			perr.Missing = append(perr.Missing, it.ID)
		}
	}

	if len(perr.Missing) > 0 || len(perr.Duplicate) > 0 || len(perr.Unknown) > 0 {
		return &perr
	}

	s.items = next
	return nil
}

// Items returns a copy of the ordered item list.
func (s *Session) Items() []domain.SourceItem {
	items := make([]domain.SourceItem, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the number of items.
func (s *Session) Len() int { return len(s.items) }

// TotalPages returns the sum of all item page counts. It is always current
// after any mutating operation completes.
func (s *Session) TotalPages() int { return domain.TotalPages(s.items) }

// OutputName returns the user-chosen output name, or the default derived
// from the current item list while the user has not overridden it.
func (s *Session) OutputName() string {
	if s.overridden && s.outputName != "" {
		return s.outputName
	}
	return domain.DefaultOutputName(s.items)
}

// SetOutputName overrides the derived default. An empty name clears the
// override so the default derivation takes over again.
func (s *Session) SetOutputName(name string) {
	s.outputName = name
	s.overridden = name != ""
}

// Snapshot produces the immutable merge request for the current session
// content. Later session mutations do not affect the returned request.
func (s *Session) Snapshot() domain.MergeRequest {
	return domain.NewMergeRequest(s.items, s.OutputName())
}
