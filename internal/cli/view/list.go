// Package view holds the client-side presentation state: the filterable item
// list and the add-item form. Both are plain reducers over the API client so
// they can be tested without a terminal.
package view

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"LostAndFound/internal/cli/api"
)

// ErrAdminRequired: a mutation was attempted without an admin session.
var ErrAdminRequired = errors.New("admin sign-in required")

// ItemWriter is the subset of the API client the list mutations need.
type ItemWriter interface {
	UpdateItemStatus(ctx context.Context, id, status string) error
	DeleteItem(ctx context.Context, id string) error
}

// ListState is the local copy of the item set plus the active filters.
// Mutations patch the local copy after server success; the list is never
// refetched on account of a mutation.
type ListState struct {
	writer ItemWriter
	admin  bool

	items []api.Item

	TextFilter   string
	StatusFilter string // "all", "unclaimed" or "claimed"
}

func NewListState(writer ItemWriter, admin bool) *ListState {
	return &ListState{
		writer:       writer,
		admin:        admin,
		StatusFilter: "all",
	}
}

// SetItems replaces the local item set, usually right after a fetch.
func (s *ListState) SetItems(items []api.Item) {
	s.items = items
}

// Items returns the unfiltered local set.
func (s *ListState) Items() []api.Item {
	return s.items
}

// Filtered applies the text and status filters. Text matches name or found
// location, case-insensitive; both filters must pass.
func (s *ListState) Filtered() []api.Item {
	out := make([]api.Item, 0, len(s.items))
	for _, it := range s.items {
		if s.matches(it) {
			out = append(out, it)
		}
	}
	return out
}

func (s *ListState) matches(it api.Item) bool {
	if text := strings.ToLower(strings.TrimSpace(s.TextFilter)); text != "" {
		name := strings.ToLower(it.Name)
		loc := strings.ToLower(it.FoundLocation)
		if !strings.Contains(name, text) && !strings.Contains(loc, text) {
			return false
		}
	}
	if s.StatusFilter != "" && s.StatusFilter != "all" && it.Status != s.StatusFilter {
		return false
	}
	return true
}

// ToggleStatus flips one item between claimed and unclaimed on the server,
// then patches the local copy in place.
func (s *ListState) ToggleStatus(ctx context.Context, id string) error {
	if !s.admin {
		return ErrAdminRequired
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("unknown item %q", id)
	}

	next := "claimed"
	if s.items[idx].Status == "claimed" {
		next = "unclaimed"
	}
	if err := s.writer.UpdateItemStatus(ctx, id, next); err != nil {
		return err
	}
	s.items[idx].Status = next
	return nil
}

// Remove deletes one item on the server, then drops it from the local copy.
func (s *ListState) Remove(ctx context.Context, id string) error {
	if !s.admin {
		return ErrAdminRequired
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("unknown item %q", id)
	}

	if err := s.writer.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

func (s *ListState) indexOf(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
