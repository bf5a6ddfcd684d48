package award

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("award not found")
)

type Repository interface {
	List() ([]Award, error)
	GetByID(id int) (Award, error)
	Create(a Award) (Award, error)
	Update(id int, a Award) (Award, error)
	Delete(id int) error
	// Reset replaces all awards with the provided list (used for seeding)
	Reset(awards []Award) error
}

// InMemoryRepository keeps awards in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Award
	nextID  int
}

func NewInMemoryRepository(seed []Award) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Award, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Award, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.ID == id {
			return a, nil
		}
	}
	return Award{}, ErrNotFound
}

func (r *InMemoryRepository) Create(a Award) (Award, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, a)
	return a, nil
}

func (r *InMemoryRepository) Update(id int, a Award) (Award, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			a.ID = id
			a.CreatedAt = r.storage[i].CreatedAt
			r.storage[i] = a
			return a, nil
		}
	}
	return Award{}, ErrNotFound
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

func (r *InMemoryRepository) Reset(awards []Award) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Award, 0, len(awards))
	maxID := 0
	for _, a := range awards {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	r.nextID = maxID + 1
	for _, a := range awards {
		if a.ID == 0 {
			a.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, a)
	}
	return nil
}
