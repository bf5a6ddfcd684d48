package article

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("article not found")
	ErrSlugTaken = errors.New("slug has already been taken")
)

type Repository interface {
	List() ([]Article, error)
	GetByID(id int) (Article, error)
	GetBySlug(slug string) (Article, error)
	Create(a Article) (Article, error)
	Update(id int, a Article) (Article, error)
	Delete(id int) error
	// Reset replaces all rows with the provided list (used for seeding)
	Reset(articles []Article) error
}

// InMemoryRepository keeps rows in a slice; used by tests and when no
// database is configured.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []Article
	nextID  int
}

func NewInMemoryRepository(seed []Article) *InMemoryRepository {
	r := &InMemoryRepository{}
	_ = r.Reset(seed)
	return r
}

func (r *InMemoryRepository) List() ([]Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Article, len(r.storage))
	copy(out, r.storage)
	return out, nil
}

func (r *InMemoryRepository) GetByID(id int) (Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.ID == id {
			return a, nil
		}
	}
	return Article{}, ErrNotFound
}

func (r *InMemoryRepository) GetBySlug(slug string) (Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.storage {
		if a.Slug == slug {
			return a, nil
		}
	}
	return Article{}, ErrNotFound
}

func (r *InMemoryRepository) Create(a Article) (Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, a)
	return a, nil
}

func (r *InMemoryRepository) Update(id int, a Article) (Article, error) {
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
	return Article{}, ErrNotFound
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

func (r *InMemoryRepository) Reset(articles []Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage = make([]Article, 0, len(articles))
	maxID := 0
	for _, a := range articles {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	r.nextID = maxID + 1
	for _, a := range articles {
		if a.ID == 0 {
			a.ID = r.nextID
			r.nextID++
		}
		r.storage = append(r.storage, a)
	}
	return nil
}
