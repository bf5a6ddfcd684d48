package certification

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("certification not found")
)

type Repository interface {
	List() ([]Certification, error)
	GetByID(id int) (Certification, error)
	Create(c Certification) (Certification, error)
	Update(id int, c Certification) (Certification, error)
	Delete(id int) error
	// Reset replaces all rows with the provided list (used for seeding)
	Reset(certs []Certification) error
}

// InMemoryRepository keeps rows in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Certification
	nextID  int
}

func NewInMemoryRepository(seed []Certification) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Certification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Certification, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Certification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.storage {
		if c.ID == id {
			return c, nil
		}
	}
	return Certification{}, ErrNotFound
}

func (r *InMemoryRepository) Create(c Certification) (Certification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, c)
	return c, nil
}

func (r *InMemoryRepository) Update(id int, c Certification) (Certification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			c.ID = id
			c.CreatedAt = r.storage[i].CreatedAt
			r.storage[i] = c
			return c, nil
		}
	}
	return Certification{}, ErrNotFound
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

func (r *InMemoryRepository) Reset(certs []Certification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Certification, 0, len(certs))
	maxID := 0
	for _, c := range certs {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	r.nextID = maxID + 1
	for _, c := range certs {
		if c.ID == 0 {
			c.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, c)
	}
	return nil
}
