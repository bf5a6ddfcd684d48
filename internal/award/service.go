package award

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

// List returns awards matching search, most recent first.
func (s *Service) List(search string) ([]Award, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(a Award) bool {
		return listing.Match(search, a.Name, a.Issuer, a.Description)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *Service) GetByID(id int) (Award, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(f Form, image *string) (Award, error) {
	now := s.now().UTC().Format(time.RFC3339)
	a := fromForm(f, image)
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(a)
}

func (s *Service) Update(id int, f Form, image *string) (Award, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Award{}, err
	}
	a := fromForm(f, image)
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, a)
}

// Delete removes the award and returns it so callers can clean up files.
func (s *Service) Delete(id int) (Award, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Award{}, err
	}
	if err := s.repo.Delete(id); err != nil {
		return Award{}, err
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

// Reset replaces all awards with the given list (used for seeding).
func (s *Service) Reset(awards []Award) error {
	now := s.now().UTC().Format(time.RFC3339)
	for i := range awards {
		if awards[i].CreatedAt == "" {
			awards[i].CreatedAt = now
		}
		if awards[i].UpdatedAt == "" {
			awards[i].UpdatedAt = awards[i].CreatedAt
		}
	}
	return s.repo.Reset(awards)
}

func fromForm(f Form, image *string) Award {
	a := Award{
		Name:        strings.TrimSpace(f.Name),
		Issuer:      strings.TrimSpace(f.Issuer),
		Date:        f.Date,
		Description: strings.TrimSpace(f.Description),
		Image:       image,
	}
	if u := strings.TrimSpace(f.URL); u != "" {
		a.URL = &u
	}
	return a
}
