package service

import (
	"sort"
	"strings"
	"time"

	"github.com/wichananm65/portfolio-backend/internal/listing"
)

// Manager holds the business rules for services. The name avoids a clash
// with the Service model.
type Manager struct {
	repo Repository
	now  func() time.Time
}

func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo, now: time.Now}
}

// List returns matching services by ascending Ord.
func (m *Manager) List(search string) ([]Service, error) {
	all, err := m.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(s Service) bool {
		return listing.Match(search, s.Title, s.Description)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ord != out[j].Ord {
			return out[i].Ord < out[j].Ord
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Manager) GetByID(id int) (Service, error) {
	return m.repo.GetByID(id)
}

func (m *Manager) Create(f Form) (Service, error) {
	now := m.now().UTC().Format(time.RFC3339)
	s := fromForm(f)
	s.CreatedAt = now
	s.UpdatedAt = now
	return m.repo.Create(s)
}

func (m *Manager) Update(id int, f Form) (Service, error) {
	existing, err := m.repo.GetByID(id)
	if err != nil {
		return Service{}, err
	}
	s := fromForm(f)
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = m.now().UTC().Format(time.RFC3339)
	return m.repo.Update(id, s)
}

func (m *Manager) Delete(id int) (Service, error) {
	existing, err := m.repo.GetByID(id)
	if err != nil {
		return Service{}, err
	}
	if err := m.repo.Delete(id); err != nil {
		return Service{}, err
	}
	return existing, nil
}

func (m *Manager) Count() (int, error) {
	all, err := m.repo.List()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (m *Manager) Reset(items []Service) error {
	now := m.now().UTC().Format(time.RFC3339)
	for i := range items {
		if items[i].CreatedAt == "" {
			items[i].CreatedAt = now
		}
		if items[i].UpdatedAt == "" {
			items[i].UpdatedAt = items[i].CreatedAt
		}
	}
	return m.repo.Reset(items)
}

func fromForm(f Form) Service {
	return Service{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Icon:        strings.TrimSpace(f.Icon),
		Ord:         f.Ord,
	}
}
