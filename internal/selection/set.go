// Package selection tracks artworks chosen across catalog pages.
package selection

import (
	"slices"

	"github.com/mmcdole/easel/internal/domain"
)

// Set maps artwork ID to the last-seen artwork value.
// Iteration follows first-insertion order; re-adding an ID keeps its slot.
type Set struct {
	order []int
	items map[int]domain.Artwork
}

// NewSet creates an empty selection set
func NewSet() *Set {
	return &Set{items: make(map[int]domain.Artwork)}
}

// Has reports whether the artwork ID is selected
func (s *Set) Has(id int) bool {
	_, ok := s.items[id]
	return ok
}

// Len returns the number of selected artworks
func (s *Set) Len() int {
	return len(s.items)
}

// Get returns the stored artwork for an ID
func (s *Set) Get(id int) (domain.Artwork, bool) {
	a, ok := s.items[id]
	return a, ok
}

// Items returns the selected artworks in insertion order
func (s *Set) Items() []domain.Artwork {
	out := make([]domain.Artwork, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Clone returns an independent copy
func (s *Set) Clone() *Set {
	c := &Set{
		order: slices.Clone(s.order),
		items: make(map[int]domain.Artwork, len(s.items)),
	}
	for id, a := range s.items {
		c.items[id] = a
	}
	return c
}

// Add stores the artwork, replacing any previous value for its ID
func (s *Set) Add(a domain.Artwork) {
	if _, ok := s.items[a.ID]; !ok {
		s.order = append(s.order, a.ID)
	}
	s.items[a.ID] = a
}

// Remove deletes one ID unconditionally. Returns false if it was absent.
func (s *Set) Remove(id int) bool {
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	return true
}

// ClearPage removes every artwork of the page from the set
func (s *Set) ClearPage(page []domain.Artwork) {
	for _, a := range page {
		s.Remove(a.ID)
	}
}

// ReconcilePage replaces the page's contribution with exactly the checked rows:
// (set \ pageIDs) ∪ checked. Entries from other pages are untouched.
func (s *Set) ReconcilePage(page, checked []domain.Artwork) {
	s.ClearPage(page)
	for _, a := range checked {
		s.Add(a)
	}
}

// PageSelection returns the page's artworks that are selected, in page order
func (s *Set) PageSelection(page []domain.Artwork) []domain.Artwork {
	var out []domain.Artwork
	for _, a := range page {
		if s.Has(a.ID) {
			out = append(out, a)
		}
	}
	return out
}
