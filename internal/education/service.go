package education

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

// List returns matching entries, ongoing ones first, then by start month.
func (s *Service) List(search string) ([]Education, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(e Education) bool {
		return listing.Match(search, e.Institution, e.Degree, e.FieldOfStudy)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current
		}
		return out[i].StartMonth > out[j].StartMonth
	})
	return out, nil
}

func (s *Service) GetByID(id int) (Education, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(f Form, logo *string) (Education, error) {
	now := s.now().UTC().Format(time.RFC3339)
	e := fromForm(f, logo)
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.repo.Create(e)
}

func (s *Service) Update(id int, f Form, logo *string) (Education, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Education{}, err
	}
	e := fromForm(f, logo)
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, e)
}

func (s *Service) Delete(id int) (Education, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Education{}, err
	}
	if err := s.repo.Delete(id); err != nil {
		return Education{}, err
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

func (s *Service) Reset(items []Education) error {
	now := s.now().UTC().Format(time.RFC3339)
	for i := range items {
		if items[i].Current {
			items[i].EndMonth = nil
		}
		if items[i].CreatedAt == "" {
			items[i].CreatedAt = now
		}
		if items[i].UpdatedAt == "" {
			items[i].UpdatedAt = items[i].CreatedAt
		}
	}
	return s.repo.Reset(items)
}

// fromForm drops the end month of an ongoing entry.
func fromForm(f Form, logo *string) Education {
	e := Education{
		Institution:  strings.TrimSpace(f.Institution),
		Degree:       strings.TrimSpace(f.Degree),
		FieldOfStudy: strings.TrimSpace(f.FieldOfStudy),
		StartMonth:   f.StartMonth,
		Current:      f.Current,
		Grade:        strings.TrimSpace(f.Grade),
		Description:  f.Description,
		Logo:         logo,
	}
	if !f.Current && f.EndMonth != "" {
		end := f.EndMonth
		e.EndMonth = &end
	}
	return e
}
