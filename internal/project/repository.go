package project

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("project not found")
	ErrSlugTaken = errors.New("slug has already been taken")
)

type Repository interface {
	List() ([]Project, error)
	GetByID(id int) (Project, error)
	GetBySlug(slug string) (Project, error)
	Create(p Project) (Project, error)
	Update(id int, p Project) (Project, error)
	Delete(id int) error
	// Reset replaces all rows with the provided list (used for seeding)
	Reset(projects []Project) error
}

// InMemoryRepository keeps rows in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Project
	nextID  int
}

func NewInMemoryRepository(seed []Project) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Project, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.storage {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Project) (Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, p)
	return p, nil
}

func (r *InMemoryRepository) Update(id int, p Project) (Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			p.ID = id
			p.CreatedAt = r.storage[i].CreatedAt
			r.storage[i] = p
			return p, nil
		}
	}
	return Project{}, ErrNotFound
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

func (r *InMemoryRepository) Reset(projects []Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Project, 0, len(projects))
	maxID := 0
	for _, p := range projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	r.nextID = maxID + 1
	for _, p := range projects {
		if p.ID == 0 {
			p.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, p)
	}
	return nil
}
