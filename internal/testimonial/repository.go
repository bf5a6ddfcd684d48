package testimonial

import (
	"errors"
	"sync"
)

var (
	ErrNotFound = errors.New("testimonial not found")
)

type Repository interface {
	List() ([]Testimonial, error)
	GetByID(id int) (Testimonial, error)
	Create(t Testimonial) (Testimonial, error)
	Update(id int, t Testimonial) (Testimonial, error)
	Delete(id int) error
	// Reset replaces all rows with the provided list (used for seeding)
	Reset(testimonials []Testimonial) error
}

// InMemoryRepository keeps rows in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Testimonial
	nextID  int
}

func NewInMemoryRepository(seed []Testimonial) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Testimonial, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, t := range r.storage {
		if t.ID == id {
			return t, nil
		}
	}
	return Testimonial{}, ErrNotFound
}

func (r *InMemoryRepository) Create(t Testimonial) (Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, t)
	return t, nil
}

func (r *InMemoryRepository) Update(id int, t Testimonial) (Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			t.ID = id
			t.CreatedAt = r.storage[i].CreatedAt
			r.storage[i] = t
			return t, nil
		}
	}
	return Testimonial{}, ErrNotFound
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

func (r *InMemoryRepository) Reset(testimonials []Testimonial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Testimonial, 0, len(testimonials))
	maxID := 0
	for _, t := range testimonials {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	r.nextID = maxID + 1
	for _, t := range testimonials {
		if t.ID == 0 {
			t.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, t)
	}
	return nil
}
