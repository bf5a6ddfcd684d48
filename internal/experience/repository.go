package experience

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("experience not found")
)

type Repository interface {
	List() ([]Experience, error)
	GetByID(id int) (Experience, error)
	Create(e Experience) (Experience, error)
	Update(id int, e Experience) (Experience, error)
	Delete(id int) error
	// Reset replaces all rows with the provided list (used for seeding)
	Reset(experiences []Experience) error
}

// InMemoryRepository keeps rows in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Experience
	nextID  int
}

func NewInMemoryRepository(seed []Experience) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Experience, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Experience, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.storage {
		if e.ID == id {
			return e, nil
		}
	}
	return Experience{}, ErrNotFound
}

func (r *InMemoryRepository) Create(e Experience) (Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, e)
	return e, nil
}

func (r *InMemoryRepository) Update(id int, e Experience) (Experience, error) {
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
	return Experience{}, ErrNotFound
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

func (r *InMemoryRepository) Reset(experiences []Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Experience, 0, len(experiences))
	maxID := 0
	for _, e := range experiences {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	r.nextID = maxID + 1
	for _, e := range experiences {
		if e.ID == 0 {
			e.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, e)
	}
	return nil
}
