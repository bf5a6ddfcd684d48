package education

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("education not found")
)

type Repository interface {
	List() ([]Education, error)
	GetByID(id int) (Education, error)
	Create(e Education) (Education, error)
	Update(id int, e Education) (Education, error)
	Delete(id int) error
	// Reset replaces all rows with the provided list (used for seeding)
	Reset(educations []Education) error
}

// InMemoryRepository keeps rows in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Education
	nextID  int
}

func NewInMemoryRepository(seed []Education) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Education, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Education, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Education, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.storage {
		if e.ID == id {
			return e, nil
		}
	}
	return Education{}, ErrNotFound
}

func (r *InMemoryRepository) Create(e Education) (Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, e)
	return e, nil
}

func (r *InMemoryRepository) Update(id int, e Education) (Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			e.ID = id
			e.CreatedAt = r.storage[i].CreatedAt
			r.storage[i] = e
			return e, nil
		}
	}
	return Education{}, ErrNotFound
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

func (r *InMemoryRepository) Reset(educations []Education) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Education, 0, len(educations))
	maxID := 0
	for _, e := range educations {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	r.nextID = maxID + 1
	for _, e := range educations {
		if e.ID == 0 {
			e.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, e)
	}
	return nil
}
