package service

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("service not found")
)

type Repository interface {
	List() ([]Service, error)
	GetByID(id int) (Service, error)
	Create(s Service) (Service, error)
	Update(id int, s Service) (Service, error)
	Delete(id int) error
	// Reset replaces all rows with the provided list (used for seeding)
	Reset(services []Service) error
}

// InMemoryRepository keeps rows in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Service
	nextID  int
}

func NewInMemoryRepository(seed []Service) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Service, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.storage {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, ErrNotFound
}

func (r *InMemoryRepository) Create(s Service) (Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, s)
	return s, nil
}

func (r *InMemoryRepository) Update(id int, s Service) (Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			s.ID = id
			s.CreatedAt = r.storage[i].CreatedAt
			r.storage[i] = s
			return s, nil
		}
	}
	return Service{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) Reset(services []Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Service, 0, len(services))
	maxID := 0
	for _, s := range services {
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	r.nextID = maxID + 1
	for _, s := range services {
		if s.ID == 0 {
			s.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, s)
	}
	return nil
}
