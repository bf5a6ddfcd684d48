package setting

import "sync"

type Repository interface {
	// Get returns the stored settings, or Default when nothing was saved yet.
	Get() (Setting, error)
	Save(s Setting) (Setting, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	current *Setting
}

func NewInMemoryRepository(seed *Setting) *InMemoryRepository {
	return &InMemoryRepository{current: seed}
}

func (r *InMemoryRepository) Get() (Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return Default(), nil
	}
	return *r.current, nil
}

func (r *InMemoryRepository) Save(s Setting) (Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = &s
	return s, nil
}
