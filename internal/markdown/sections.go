package markdown

import (
	"github.com/mmr-tortoise/repodesc/internal/model"
)

// Sections is an ordered collection of sections keyed by title.
//
// Upsert keeps the position of the first insertion and the value of the
// last one: re-inserting an existing title replaces its body in place.
// The zero value is an empty collection ready for use.
type Sections struct {
	items []model.Section
	index map[string]int
}

// Upsert inserts a section or, when the title is already present,
// replaces its body without moving it.
func (s *Sections) Upsert(title, body string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[title]; ok {
		s.items[i].Body = body
		return
	}
	s.index[title] = len(s.items)
	s.items = append(s.items, model.Section{Title: title, Body: body})
}

// Get returns the body stored under title.
func (s *Sections) Get(title string) (string, bool) {
	i, ok := s.index[title]
	if !ok {
		return "", false
	}
	return s.items[i].Body, true
}

// Len returns the number of distinct titles.
func (s *Sections) Len() int {
	return len(s.items)
}

// Titles returns the titles in insertion order.
func (s *Sections) Titles() []string {
	titles := make([]string, 0, len(s.items))
	for _, item := range s.items {
		titles = append(titles, item.Title)
	}
	return titles
}

// All returns a copy of the sections in insertion order.
func (s *Sections) All() []model.Section {
	out := make([]model.Section, len(s.items))
	copy(out, s.items)
	return out
}
