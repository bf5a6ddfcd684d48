package testimonial

import (
	"sort"
	"strings"
	"time"

	"github.com/wichananm65/portfolio-backend/internal/listing"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns matching testimonials, best rated first.
func (s *Service) List(search string) ([]Testimonial, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(t Testimonial) bool {
		return listing.Match(search, t.Name, t.Role, t.Company, t.Quote)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (s *Service) GetByID(id int) (Testimonial, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(f Form, avatar *string) (Testimonial, error) {
	now := s.now().UTC().Format(time.RFC3339)
	t := fromForm(f, avatar)
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.repo.Create(t)
}

func (s *Service) Update(id int, f Form, avatar *string) (Testimonial, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Testimonial{}, err
	}
	t := fromForm(f, avatar)
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, t)
}

func (s *Service) Delete(id int) (Testimonial, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Testimonial{}, err
	}
	if err := s.repo.Delete(id); err != nil {
		return Testimonial{}, err
	}
	return existing, nil
}

func (s *Service) Count() (int, error) {
	all, err := s.repo.List()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

// Clients counts distinct companies, falling back to the person's name for
// testimonials without one.
func (s *Service) Clients() (int, error) {
	all, err := s.repo.List()
	if err != nil {
		return 0, err
	}
	seen := map[string]struct{}{}
	for _, t := range all {
		key := strings.ToLower(strings.TrimSpace(t.Company))
		if key == "" {
			key = "person:" + strings.ToLower(strings.TrimSpace(t.Name))
		}
		seen[key] = struct{}{}
	}
	return len(seen), nil
}

func (s *Service) Reset(items []Testimonial) error {
	now := s.now().UTC().Format(time.RFC3339)
	for i := range items {
		if items[i].CreatedAt == "" {
			items[i].CreatedAt = now
		}
		if items[i].UpdatedAt == "" {
			items[i].UpdatedAt = items[i].CreatedAt
		}
	}
	return s.repo.Reset(items)
}

func fromForm(f Form, avatar *string) Testimonial {
	return Testimonial{
		Name:    strings.TrimSpace(f.Name),
		Role:    strings.TrimSpace(f.Role),
		Company: strings.TrimSpace(f.Company),
		Quote:   strings.TrimSpace(f.Quote),
		Rating:  f.Rating,
		Avatar:  avatar,
	}
}
