package experience

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

func (s *Service) List(search string) ([]Experience, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(e Experience) bool {
		return listing.Match(search, e.Company, e.Position, e.Location, e.EmploymentType)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Current != out[j].Current {
			return out[i].Current
		}
		return out[i].StartMonth > out[j].StartMonth
	})
	return out, nil
}

func (s *Service) GetByID(id int) (Experience, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(f Form, logo *string) (Experience, error) {
	now := s.now().UTC().Format(time.RFC3339)
	e := fromForm(f, logo)
	e.CreatedAt = now
	e.UpdatedAt = now
	return s.repo.Create(e)
}

func (s *Service) Update(id int, f Form, logo *string) (Experience, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Experience{}, err
	}
	e := fromForm(f, logo)
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, e)
}

func (s *Service) Delete(id int) (Experience, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Experience{}, err
	}
	if err := s.repo.Delete(id); err != nil {
		return Experience{}, err
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

// YearsOfExperience counts whole years from the earliest start month to now.
func (s *Service) YearsOfExperience() (int, error) {
	all, err := s.repo.List()
	if err != nil {
		return 0, err
	}
	earliest := ""
	for _, e := range all {
		if earliest == "" || e.StartMonth < earliest {
			earliest = e.StartMonth
		}
	}
	if earliest == "" {
		return 0, nil
	}
	span := Experience{StartMonth: earliest, Current: true}
	return span.Months(s.now()) / 12, nil
}

func (s *Service) Reset(items []Experience) error {
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

func fromForm(f Form, logo *string) Experience {
	e := Experience{
		Company:        strings.TrimSpace(f.Company),
		Position:       strings.TrimSpace(f.Position),
		Location:       strings.TrimSpace(f.Location),
		EmploymentType: f.EmploymentType,
		StartMonth:     f.StartMonth,
		Current:        f.Current,
		Description:    f.Description,
		Logo:           logo,
	}
	if !f.Current && f.EndMonth != "" {
		end := f.EndMonth
		e.EndMonth = &end
	}
	return e
}
