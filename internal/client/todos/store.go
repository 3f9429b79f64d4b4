// Package todos is an in-memory todo list. Items exist for the lifetime of
// the process only; there are no failure semantics beyond lookup misses.
package todos

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskvault/internal/client/models"
)

// ErrNotFound is returned when no item has the requested id.
var ErrNotFound = errors.New("todo not found")

// Store is a mutex-guarded todo collection preserving insertion order.
type Store struct {
	mu    sync.Mutex
	items []models.Todo

	// now is a test seam for timestamps.
	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// List returns a copy of all items in insertion order.
func (s *Store) List() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Todo, len(s.items))
	copy(out, s.items)
	return out
}

// Add appends a new item and returns it.
func (s *Store) Add(title, description string) models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	todo := models.Todo{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.items = append(s.items, todo)
	return todo
}

// Update replaces the title and description of the item with the given id.
func (s *Store) Update(id, title, description string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return models.Todo{}, ErrNotFound
	}
	s.items[i].Title = title
	s.items[i].Description = description
	s.items[i].UpdatedAt = s.now()
	return s.items[i], nil
}

// Toggle flips the completed flag of the item with the given id.
func (s *Store) Toggle(id string) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return models.Todo{}, ErrNotFound
	}
	s.items[i].Completed = !s.items[i].Completed
	s.items[i].UpdatedAt = s.now()
	return s.items[i], nil
}

// Delete removes the item with the given id.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return ErrNotFound
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

func (s *Store) index(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}
